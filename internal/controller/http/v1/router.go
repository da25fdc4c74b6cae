package httpv1

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/service"
	"golang.org/x/time/rate"
)

const profileKey = "profile"

type Options struct {
	// Location is the timezone day boundaries are computed in.
	Location *time.Location
	// RateLimit is the allowed requests per second per client, 0 disables it.
	RateLimit float64
}

func ConfigureRouter(handler *echo.Echo, services *service.Services, opts Options) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	handler.HideBanner = true
	handler.HTTPErrorHandler = errorHandler
	handler.Use(middleware.Recover())
	handler.Use(requestLogger())

	api := handler.Group(apiPrefix)
	if opts.RateLimit > 0 {
		api.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}
	api.Use(basicAuth(services.Profile))

	sc := NewServiceController(services.Service, opts.Location)
	api.GET("/services", sc.List)
	api.POST("/services", sc.Create)
	api.GET("/services/:slug", sc.Get)
	api.PUT("/services/:slug", sc.Update)
	api.DELETE("/services/:slug", sc.Delete)
	api.GET("/services/:slug/days", sc.Days)
	api.GET("/services/:slug/days/:date", sc.Day)
	api.GET("/services/:slug/history/:year", sc.History)
	api.GET("/services/:slug/history/:year/:month", sc.History)
	api.GET("/services/:slug/history/:year/:month/:day", sc.History)

	ec := NewEventController(services.Event, opts.Location)
	api.GET("/services/:slug/events", ec.List)
	api.POST("/services/:slug/events", ec.Create)
	api.GET("/services/:slug/events/current", ec.Current)
	api.GET("/services/:slug/events/:sid", ec.Get)

	stc := NewStatusController(services.Status)
	api.GET("/statuses", stc.List)
	api.POST("/statuses", stc.Create)
	api.GET("/statuses/:slug", stc.Get)
	api.PUT("/statuses/:slug", stc.Update)

	api.GET("/status-images", listImages)
	api.GET("/levels", listLevels)

	handler.Any("/api/*", notFound)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.Error != nil && v.Status >= http.StatusInternalServerError {
				entry.WithField("error", v.Error).Warn("Request failed")
				return nil
			}
			entry.Debug("Request handled")
			return nil
		},
	})
}

func readOnly(c echo.Context) bool {
	switch c.Request().Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// basicAuth guards mutating routes. The username is the profile token and
// the password its secret.
func basicAuth(profiles service.Profile) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: readOnly,
		Realm:   "stashboard",
		Validator: func(token, secret string, c echo.Context) (bool, error) {
			p, err := profiles.Authenticate(c.Request().Context(), token, secret)
			if errors.Is(err, service.ErrInvalidCredentials) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			c.Set(profileKey, p)
			return true, nil
		},
	})
}
