package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

type requestObserver interface {
	InFlightInc()
	InFlightDec()
	ObserveRequest(method, path string, status int, d time.Duration)
}

func Metrics(m requestObserver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		m.InFlightInc()
		defer m.InFlightDec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
