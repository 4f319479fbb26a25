package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

// DefaultInvitationRetention is how long expired invitations are kept for
// audit before housekeeping removes them.
const DefaultInvitationRetention = 30 * 24 * time.Hour

// HousekeepingService periodically removes expired invitations and stale role
// grants. Assignments and employees are never deleted.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Clock     Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults the interval to 1 hour and the retention to
// DefaultInvitationRetention.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultInvitationRetention
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// Cleanup runs one pass. Each deletion is independent; a failure in one does
// not stop the other.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	now := s.now()
	s.Logger.Debug("starting housekeeping cleanup")

	invites, err := s.Store.Invitations().DeleteInvitationsExpiredBefore(ctx, now.Add(-s.Retention))
	if err != nil {
		s.Logger.Error("failed to delete expired invitations", "error", err)
	}

	grants, err := s.Store.RoleAssignments().DeleteStaleRoleAssignments(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete stale role grants", "error", err)
	}

	s.Logger.Info("housekeeping cleanup completed",
		"invitations_deleted", invites,
		"grants_deleted", grants,
	)
}
