package service

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/cache"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/metrics"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
)

const (
	outcomeCached    = "cached"
	outcomePresent   = "present"
	outcomeInstalled = "installed"
	outcomeRaced     = "raced"
)

// InstallService seeds the default statuses exactly once. The settings
// table is authoritative, the cache only saves a query.
type InstallService struct {
	settingRepo repo.Setting
	statusRepo  repo.Status
	trManager   TxManager
	cache       cache.Flags
	counters    *metrics.Counters
}

func NewInstallService(sr repo.Setting, str repo.Status, tm TxManager, c cache.Flags, cnt *metrics.Counters) *InstallService {
	return &InstallService{
		settingRepo: sr,
		statusRepo:  str,
		trManager:   tm,
		cache:       c,
		counters:    cnt,
	}
}

// EnsureDefaults installs the default statuses unless a previous run did.
// It reports whether this call performed the installation.
func (s *InstallService) EnsureDefaults(ctx context.Context) (bool, error) {
	if installed, ok := s.cache.Get(domain.SettingInstalledDefaults); ok && installed {
		s.counters.BootstrapRuns.Inc(outcomeCached)
		return false, nil
	}

	exists, err := s.settingRepo.SettingExists(ctx, domain.SettingInstalledDefaults)
	if err != nil {
		return false, errorsUtils.WrapPathErr(backendErr(err))
	}
	if exists {
		s.counters.BootstrapRuns.Inc(outcomePresent)
		s.remember()
		return false, nil
	}

	var installed bool
	err = s.trManager.Do(ctx, func(ctx context.Context) error {
		claimed, err := s.settingRepo.ClaimSetting(ctx, domain.SettingInstalledDefaults)
		if err != nil || !claimed {
			return err
		}
		if err := s.installDefaults(ctx); err != nil {
			return err
		}
		installed = true
		return nil
	})
	if err != nil {
		return false, errorsUtils.WrapPathErr(backendErr(err))
	}

	if installed {
		log.Info("Installed default statuses")
		s.counters.BootstrapRuns.Inc(outcomeInstalled)
	} else {
		log.Info("Default statuses were installed concurrently")
		s.counters.BootstrapRuns.Inc(outcomeRaced)
	}
	s.remember()

	return installed, nil
}

// installDefaults creates the default statuses, skipping slugs an
// administrator already created so the transaction never hits a conflict.
func (s *InstallService) installDefaults(ctx context.Context) error {
	for _, st := range domain.DefaultStatuses() {
		_, err := s.statusRepo.GetStatusBySlug(ctx, st.Slug)
		if err == nil {
			log.WithField("status", st.Slug).Warn("Default status already present, skipping")
			continue
		}
		if !errors.Is(err, repoerrs.ErrNotFound) {
			return err
		}

		if _, err := s.statusRepo.CreateStatus(ctx, &st); err != nil {
			return err
		}
		log.WithField("status", st.Slug).Debug("Default status created")
	}
	return nil
}

func (s *InstallService) remember() {
	if err := s.cache.Add(domain.SettingInstalledDefaults, true); err != nil {
		log.WithField("key", domain.SettingInstalledDefaults).Errorf("Cache set failed: %v", err)
	}
}
