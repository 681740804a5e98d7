package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "shopadmin_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// ProductMutations counts product write operations by kind and outcome.
var ProductMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "shopadmin_product_mutations_total",
	Help: "Total number of product mutations by operation and result",
}, []string{"operation", "result"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
