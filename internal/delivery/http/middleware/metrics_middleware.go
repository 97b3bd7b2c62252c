package middleware

import (
	"net/http"
	"strconv"
	"time"

	"clinic-management-api/internal/monitoring"

	"github.com/gorilla/mux"
)

type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		// Route template keeps label cardinality bounded.
		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		monitoring.RequestsTotal.WithLabelValues(
			req.Method,
			path,
			strconv.Itoa(rec.status),
		).Inc()

		monitoring.RequestDuration.WithLabelValues(
			req.Method,
			path,
		).Observe(time.Since(start).Seconds())
	})
}
