package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.HideBanner = true
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records request counts and latencies of the API server.
func Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("stashboard")
}
