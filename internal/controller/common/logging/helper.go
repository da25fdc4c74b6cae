package logginghelper

import (
	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/service"
)

func LogEventReceived(serviceSlug string, in service.EventInput) {
	log.WithFields(log.Fields{
		"service":       serviceSlug,
		"status":        in.StatusSlug,
		"informational": in.Informational,
	}).Info("Received event via HTTP")
}

func LogEventSaved(e domain.Event) {
	log.WithFields(log.Fields{
		"service": e.Service.Slug,
		"status":  e.Status.Slug,
		"sid":     e.SID,
		"id":      e.ID,
	}).Info("Event saved successfully")
}

func LogEventError(serviceSlug string, in service.EventInput, err error) {
	log.WithFields(log.Fields{
		"service": serviceSlug,
		"status":  in.StatusSlug,
		"error":   err,
	}).Error("Failed to save event")
}
