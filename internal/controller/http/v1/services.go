package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/smulube/stashboard/internal/controller/http/validators"
	"github.com/smulube/stashboard/internal/service"
)

type ServiceController struct {
	services service.Service
	loc      *time.Location
}

func NewServiceController(ss service.Service, loc *time.Location) *ServiceController {
	return &ServiceController{
		services: ss,
		loc:      loc,
	}
}

func (sc *ServiceController) List(c echo.Context) error {
	ctx := c.Request().Context()
	origin := requestOrigin(c)

	services, err := sc.services.List(ctx)
	if err != nil {
		return err
	}

	res := make([]ServiceResource, 0, len(services))
	for _, svc := range services {
		current, err := sc.services.CurrentEvent(ctx, svc)
		if err != nil {
			return err
		}
		res = append(res, ServiceToResource(svc, current, origin))
	}
	return c.JSON(http.StatusOK, echo.Map{"services": res})
}

func (sc *ServiceController) Get(c echo.Context) error {
	ctx := c.Request().Context()

	svc, err := sc.services.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	current, err := sc.services.CurrentEvent(ctx, svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ServiceToResource(svc, current, requestOrigin(c)))
}

func (sc *ServiceController) Create(c echo.Context) error {
	var req validators.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateService(&req); err != nil {
		return badRequest(err)
	}

	svc, err := sc.services.Create(c.Request().Context(), NewServiceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ServiceToResource(svc, nil, requestOrigin(c)))
}

func (sc *ServiceController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req validators.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateServiceUpdate(&req); err != nil {
		return badRequest(err)
	}

	svc, err := sc.services.Update(ctx, c.Param("slug"), NewServiceInput(req))
	if err != nil {
		return err
	}
	current, err := sc.services.CurrentEvent(ctx, svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ServiceToResource(svc, current, requestOrigin(c)))
}

func (sc *ServiceController) Delete(c echo.Context) error {
	svc, err := sc.services.Delete(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ServiceToResource(svc, nil, requestOrigin(c)))
}

// Days summarizes the five days before today.
func (sc *ServiceController) Days(c echo.Context) error {
	ctx := c.Request().Context()
	origin := requestOrigin(c)

	svc, err := sc.services.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	days, err := sc.services.LastFiveDays(ctx, svc)
	if err != nil {
		return err
	}

	res := make([]DayResource, 0, len(days))
	for _, d := range days {
		res = append(res, DayToResource(d, origin))
	}
	return c.JSON(http.StatusOK, echo.Map{"days": res})
}

// Day lists the events of one calendar day, oldest first.
func (sc *ServiceController) Day(c echo.Context) error {
	ctx := c.Request().Context()

	day, err := parseDay(c.Param("date"), sc.loc)
	if err != nil {
		return service.ErrInvalidDate
	}
	svc, err := sc.services.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	events, err := sc.services.EventsForDay(ctx, svc, day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"events": EventsToResources(events, requestOrigin(c))})
}

func (sc *ServiceController) History(c echo.Context) error {
	ctx := c.Request().Context()

	svc, err := sc.services.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	events, err := sc.services.History(ctx, svc, c.Param("year"), c.Param("month"), c.Param("day"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"events": EventsToResources(events, requestOrigin(c))})
}
