package http

import (
	"db-cloudops/model"
	"db-cloudops/store"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

func configID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.Fail("参数错误: id"))
		return 0, false
	}
	return id, true
}

// configError 校验失败按参数错误返回
func configError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrInvalidProduct) || errors.Is(err, store.ErrDuplicateEnabled) {
		badRequest(c, err)
		return
	}
	c.Error(err)
	c.JSON(http.StatusInternalServerError, model.Fail(err.Error()))
}

func ListConfig(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := s.ListConfigs(c.Request.Context(), c.Query("product_type"))
		if err != nil {
			configError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.Success(len(list), list))
	}
}

func GetConfig(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := configID(c)
		if !ok {
			return
		}

		cfg, err := s.GetConfig(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, model.Fail("记录不存在"))
				return
			}
			configError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.Success(1, []model.CloudConfig{*cfg}))
	}
}

func CreateConfig(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.CloudConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		if err := s.CreateConfig(c.Request.Context(), &req); err != nil {
			configError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.Created("创建成功", gin.H{"id": req.ID}))
	}
}

func UpdateConfig(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := configID(c)
		if !ok {
			return
		}

		var req model.CloudConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		if err := s.UpdateConfig(c.Request.Context(), id, &req); err != nil {
			configError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.Created("更新成功", gin.H{"id": id}))
	}
}

func DeleteConfig(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := configID(c)
		if !ok {
			return
		}

		if err := s.DeleteConfig(c.Request.Context(), id); err != nil {
			configError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.Created("删除成功", gin.H{"id": id}))
	}
}
