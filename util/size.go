package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sizeSymbols = []string{"K", "M", "G", "T", "P", "E"}

// Bytes2Human 按1024换算成可读的大小，保留两位小数
//
//	Bytes2Human(0)         = "0B"
//	Bytes2Human(1024)      = "1.0K"
//	Bytes2Human(100001221) = "95.37M"
func Bytes2Human(n int64) string {
	for i := len(sizeSymbols) - 1; i >= 0; i-- {
		prefix := int64(1) << (uint(i+1) * 10)
		if n >= prefix {
			value := math.Round(float64(n)/float64(prefix)*100) / 100
			s := strconv.FormatFloat(value, 'f', -1, 64)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			return s + sizeSymbols[i]
		}
	}
	return fmt.Sprintf("%dB", n)
}
