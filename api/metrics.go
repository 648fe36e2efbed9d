package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/leandrobouwier/Brev.ly/shared"
)

var (
	metrics          = shared.NewMetrics()
	requestPerSecond = metrics.RegisterCounter("request_per_second", "Request per second", []string{"method", "path"})
	twoXXStatusCode  = metrics.RegisterGauge("status_code_2xx", "2xx status code", []string{"method", "path", "code"})
	fourXXStatusCode = metrics.RegisterGauge("status_code_4xx", "4xx status code", []string{"method", "path", "code"})
	fiveXXStatusCode = metrics.RegisterGauge("status_code_5xx", "5xx status code", []string{"method", "path", "code"})
	requestDuration  = metrics.RegisterHistogram("request_duration_seconds", "Request duration in seconds",
		[]string{"method", "path"}, []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1})
)

func RequestCounterMiddleware(c *fiber.Ctx) error {
	// fasthttp reuses its request buffers, so c.Method()/c.Path() are
	// only valid during the request. The registry keeps label values
	// forever and needs its own copies.
	metrics.IncCounter(requestPerSecond, utils.CopyString(c.Method()), utils.CopyString(c.Path()))
	return c.Next()
}

func ResponseStatusCodeMiddleware(c *fiber.Ctx) error {
	err := c.Next()
	method := utils.CopyString(c.Method())
	path := utils.CopyString(c.Path())
	statusCode := c.Response().StatusCode()
	if statusCode >= 200 && statusCode < 300 {
		metrics.IncGauge(twoXXStatusCode, method, path, strconv.Itoa(statusCode))
	}
	if statusCode >= 400 && statusCode < 500 {
		metrics.IncGauge(fourXXStatusCode, method, path, strconv.Itoa(statusCode))
	}
	if statusCode >= 500 {
		metrics.IncGauge(fiveXXStatusCode, method, path, strconv.Itoa(statusCode))
	}
	return err
}

func RequestDurationMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	metrics.ObserveHistogram(requestDuration, time.Since(start).Seconds(),
		utils.CopyString(c.Method()), utils.CopyString(c.Path()))
	return err
}

// prometheusHandler serves the text exposition format. The /metrics
// path is taken by the CSV export, so this lives under /internal.
func prometheusHandler(c *fiber.Ctx) error {
	out, err := metrics.GetPrometheusMetrics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to collect metrics")
	}
	return c.Type("txt").SendString(out)
}
