package httpv1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/smulube/stashboard/internal/controller/http/validators"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/service"
)

type StatusController struct {
	statuses service.Status
}

func NewStatusController(ss service.Status) *StatusController {
	return &StatusController{statuses: ss}
}

func (stc *StatusController) List(c echo.Context) error {
	statuses, err := stc.statuses.List(c.Request().Context())
	if err != nil {
		return err
	}

	origin := requestOrigin(c)
	res := make([]StatusResource, 0, len(statuses))
	for _, st := range statuses {
		res = append(res, StatusToResource(st, origin))
	}
	return c.JSON(http.StatusOK, echo.Map{"statuses": res})
}

func (stc *StatusController) Get(c echo.Context) error {
	st, err := stc.statuses.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StatusToResource(st, requestOrigin(c)))
}

func (stc *StatusController) Create(c echo.Context) error {
	var req validators.StatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateStatus(&req); err != nil {
		return badRequest(err)
	}

	st, err := stc.statuses.Create(c.Request().Context(), NewStatusInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, StatusToResource(st, requestOrigin(c)))
}

func (stc *StatusController) Update(c echo.Context) error {
	var req validators.StatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateStatusUpdate(&req); err != nil {
		return badRequest(err)
	}

	st, err := stc.statuses.Update(c.Request().Context(), c.Param("slug"), NewStatusInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StatusToResource(st, requestOrigin(c)))
}

func listImages(c echo.Context) error {
	origin := requestOrigin(c)
	res := make([]ImageResource, 0, len(domain.StatusImages))
	for _, image := range domain.StatusImages {
		res = append(res, ImageToResource(image, origin))
	}
	return c.JSON(http.StatusOK, echo.Map{"images": res})
}

func listLevels(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"levels": domain.Levels()})
}
