package httpv1

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/smulube/stashboard/internal/controller/http/validators"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/service"
)

const apiPrefix = "/api/v1"

type ServiceResource struct {
	Name         string         `json:"name"`
	ID           string         `json:"id"`
	Description  string         `json:"description"`
	URL          string         `json:"url"`
	CurrentEvent *EventResource `json:"current-event"`
}

type StatusResource struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Level       string `json:"level"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

type EventResource struct {
	SID           string         `json:"sid"`
	Timestamp     string         `json:"timestamp"`
	Status        StatusResource `json:"status"`
	Message       string         `json:"message"`
	URL           string         `json:"url"`
	Informational bool           `json:"informational"`
}

type DayResource struct {
	Day         string `json:"day"`
	Image       string `json:"image"`
	ImageURL    string `json:"image_url"`
	Information bool   `json:"information"`
}

type ImageResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// requestOrigin is scheme://host of the current request. Every URL in a
// resource is absolute and built from it.
func requestOrigin(c echo.Context) string {
	u := url.URL{Scheme: c.Scheme(), Host: c.Request().Host}
	return u.String()
}

func apiURL(origin, path string) string {
	return origin + apiPrefix + path
}

func imageURL(origin, image string) string {
	return origin + domain.Status{Image: url.PathEscape(image)}.ImagePath()
}

func ServiceToResource(s domain.Service, current *domain.Event, origin string) ServiceResource {
	r := ServiceResource{
		Name:        s.Name,
		ID:          s.Slug,
		Description: s.Description,
		URL:         apiURL(origin, s.ResourcePath()),
	}
	if current != nil {
		e := EventToResource(*current, origin)
		r.CurrentEvent = &e
	}
	return r
}

func StatusToResource(st domain.Status, origin string) StatusResource {
	return StatusResource{
		Name:        st.Name,
		ID:          st.Slug,
		Description: st.Description,
		Level:       st.Level().String(),
		URL:         apiURL(origin, st.ResourcePath()),
		Image:       imageURL(origin, st.Image),
	}
}

// EventToResource renders the start time in RFC 1123 form, always in GMT.
func EventToResource(e domain.Event, origin string) EventResource {
	return EventResource{
		SID:           e.SID,
		Timestamp:     e.Start.UTC().Format(http.TimeFormat),
		Status:        StatusToResource(e.Status, origin),
		Message:       e.Message,
		URL:           apiURL(origin, e.ResourcePath()),
		Informational: e.Informational,
	}
}

func DayToResource(d domain.DaySummary, origin string) DayResource {
	return DayResource{
		Day:         d.Day.Format(domain.DateLayout),
		Image:       d.Image,
		ImageURL:    imageURL(origin, d.Image),
		Information: d.Information,
	}
}

func ImageToResource(image, origin string) ImageResource {
	return ImageResource{Name: image, URL: imageURL(origin, image)}
}

func EventsToResources(events []domain.Event, origin string) []EventResource {
	res := make([]EventResource, 0, len(events))
	for _, e := range events {
		res = append(res, EventToResource(e, origin))
	}
	return res
}

func NewServiceInput(r validators.ServiceRequest) service.ServiceInput {
	return service.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

func NewStatusInput(r validators.StatusRequest) service.StatusInput {
	return service.StatusInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Level:       r.Level,
	}
}

func NewEventInput(r validators.EventRequest) service.EventInput {
	return service.EventInput{
		StatusSlug:    r.Status,
		Message:       r.Message,
		Informational: r.Informational,
	}
}

// parseDay reads a YYYY-MM-DD value as midnight in loc.
func parseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateLayout, value, loc)
}
