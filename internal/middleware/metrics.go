package middleware

import (
	"strconv"
	"time"

	"github.com/stpnv0/ParkSpot/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
