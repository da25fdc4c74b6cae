package httpv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/service"
)

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Order matters: ErrBackendUnavailable wraps the underlying cause and must
// win over anything else that cause might match.
var errorStatuses = []struct {
	err  error
	code int
}{
	{service.ErrBackendUnavailable, http.StatusServiceUnavailable},
	{service.ErrServiceNotFound, http.StatusNotFound},
	{service.ErrStatusNotFound, http.StatusNotFound},
	{service.ErrEventNotFound, http.StatusNotFound},
	{service.ErrInvalidDate, http.StatusNotFound},
	{service.ErrServiceAlreadyExists, http.StatusConflict},
	{service.ErrStatusAlreadyExists, http.StatusConflict},
	{service.ErrServiceHasEvents, http.StatusConflict},
	{service.ErrDefaultStatusExists, http.StatusConflict},
	{service.ErrDefaultStatusLevel, http.StatusConflict},
	{service.ErrInvalidLevel, http.StatusBadRequest},
	{service.ErrInvalidName, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
}

func statusFromError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.code, es.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// errorHandler renders every handler error as the JSON error body.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := statusFromError(err)
	if code >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
			"code":   code,
		}).Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: true, Message: message})
	}
	if err != nil {
		log.Errorf("Cannot write error response: %v", err)
	}
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func notFound(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotFound, "resource not found")
}
