package http

import (
	"db-cloudops/model"
	"db-cloudops/slowquery"
	"github.com/gin-gonic/gin"
)

// SlowQueryParams SQLId前端会传，目前不使用
type SlowQueryParams struct {
	InstanceName string `form:"instance_name" binding:"required"`
	DBName       string `form:"db_name"`
	StartTime    string `form:"StartTime"`
	EndTime      string `form:"EndTime"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
	Search       string `form:"search"`
	SQLId        string `form:"SQLId"`
}

func (self *SlowQueryParams) query() (*model.SlowQueryQuery, error) {
	start, end, err := dateRange(self.StartTime, self.EndTime)
	if err != nil {
		return nil, err
	}
	return &model.SlowQueryQuery{
		InstanceName: self.InstanceName,
		DBName:       self.DBName,
		StartDate:    start,
		EndDate:      end,
		Limit:        pageLimit(self.Limit),
		Offset:       self.Offset,
		Search:       self.Search,
	}, nil
}

func SlowQueryReview(svc *slowquery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p SlowQueryParams
		if err := c.ShouldBind(&p); err != nil {
			badRequest(c, err)
			return
		}
		q, err := p.query()
		if err != nil {
			badRequest(c, err)
			return
		}
		r, err := svc.Review(c.Request.Context(), q)
		reply(c, r, err)
	}
}

func SlowQueryHistory(svc *slowquery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p SlowQueryParams
		if err := c.ShouldBind(&p); err != nil {
			badRequest(c, err)
			return
		}
		q, err := p.query()
		if err != nil {
			badRequest(c, err)
			return
		}
		r, err := svc.History(c.Request.Context(), q)
		reply(c, r, err)
	}
}
