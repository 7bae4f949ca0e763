package server

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webclient_http_requests_total",
		Help: "Requests served, by method and status code.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webclient_http_request_duration_seconds",
		Help:    "Request handling latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	gateRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webclient_gate_redirects_total",
		Help: "Redirects issued by the access gate, by target route.",
	}, []string{"target"})
)

func measureRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
