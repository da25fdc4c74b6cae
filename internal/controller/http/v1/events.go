package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	logginghelper "github.com/smulube/stashboard/internal/controller/common/logging"
	"github.com/smulube/stashboard/internal/controller/http/validators"
	"github.com/smulube/stashboard/internal/service"
)

type EventController struct {
	events service.Event
	loc    *time.Location
}

func NewEventController(es service.Event, loc *time.Location) *EventController {
	return &EventController{
		events: es,
		loc:    loc,
	}
}

// List accepts optional start and end days (YYYY-MM-DD), both inclusive.
func (ec *EventController) List(c echo.Context) error {
	var q service.EventQuery
	if start := c.QueryParam("start"); start != "" {
		from, err := parseDay(start, ec.loc)
		if err != nil {
			return badRequest(err)
		}
		q.From = from
	}
	if end := c.QueryParam("end"); end != "" {
		to, err := parseDay(end, ec.loc)
		if err != nil {
			return badRequest(err)
		}
		q.To = to.AddDate(0, 0, 1)
	}

	events, err := ec.events.List(c.Request().Context(), c.Param("slug"), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"events": EventsToResources(events, requestOrigin(c))})
}

func (ec *EventController) Create(c echo.Context) error {
	serviceSlug := c.Param("slug")

	var req validators.EventRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateEvent(&req); err != nil {
		return badRequest(err)
	}

	in := NewEventInput(req)
	logginghelper.LogEventReceived(serviceSlug, in)

	e, err := ec.events.Create(c.Request().Context(), serviceSlug, in)
	if err != nil {
		logginghelper.LogEventError(serviceSlug, in, err)
		return err
	}

	logginghelper.LogEventSaved(e)
	return c.JSON(http.StatusCreated, EventToResource(e, requestOrigin(c)))
}

func (ec *EventController) Current(c echo.Context) error {
	e, err := ec.events.Current(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if e == nil {
		return service.ErrEventNotFound
	}
	return c.JSON(http.StatusOK, EventToResource(*e, requestOrigin(c)))
}

func (ec *EventController) Get(c echo.Context) error {
	e, err := ec.events.Get(c.Request().Context(), c.Param("slug"), c.Param("sid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EventToResource(e, requestOrigin(c)))
}
