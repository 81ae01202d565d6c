package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

var (
	httpRequestsTotal     *prometheus.CounterVec
	tokenRejectionsTotal  *prometheus.CounterVec
	ratingRecomputesTotal prometheus.Counter
	registerOnce          sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the shop API.",
		}, []string{"method", "path", "status"})

		tokenRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_token_rejections_total",
			Help:      "Bearer and refresh tokens rejected, by reason.",
		}, []string{"reason"})

		ratingRecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_recomputations_total",
			Help:      "Product rating recomputations after review changes.",
		})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncTokenRejection(reason string) {
	if tokenRejectionsTotal == nil {
		return
	}
	tokenRejectionsTotal.WithLabelValues(reason).Inc()
}

func IncRatingRecompute() {
	if ratingRecomputesTotal == nil {
		return
	}
	ratingRecomputesTotal.Inc()
}
