package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/metrics"
)

// RoomLister reports the rooms currently open on the media server.
type RoomLister interface {
	ListActiveRooms(ctx context.Context) (map[string]livekit.RoomInfo, error)
}

// RoomActivator promotes the session bound to a room to active.
type RoomActivator interface {
	MarkRoomActive(ctx context.Context, room string) (bool, error)
}

// Syncer polls LiveKit and moves connecting sessions to active once their
// room has participants. It never ends sessions; that stays with finalization.
type Syncer struct {
	store     session.Store
	rooms     RoomLister
	activator RoomActivator
	interval  time.Duration
	log       zerolog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSyncer creates a new session syncer.
func NewSyncer(
	store session.Store,
	rooms RoomLister,
	activator RoomActivator,
	interval time.Duration,
	log zerolog.Logger,
) *Syncer {
	return &Syncer{
		store:     store,
		rooms:     rooms,
		activator: activator,
		interval:  interval,
		log:       log.With().Str("component", "session-syncer").Logger(),
		done:      make(chan struct{}),
	}
}

// Start begins the sync loop in background.
// Safe to call multiple times - only the first call starts the syncer.
func (s *Syncer) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.run(ctx)
		s.log.Info().Dur("interval", s.interval).Msg("session syncer started")
	})
}

// Stop gracefully shuts down the syncer.
// Safe to call multiple times - only the first call stops the syncer.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.log.Info().Msg("session syncer stopped")
	})
}

func (s *Syncer) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("context cancelled, shutting down syncer")
			return
		case <-s.done:
			s.log.Debug().Msg("done signal received, shutting down syncer")
			return
		case <-ticker.C:
			s.SyncOnce(ctx)
		}
	}
}

// SyncOnce runs a single reconciliation pass and returns how many sessions
// became active.
func (s *Syncer) SyncOnce(ctx context.Context) int {
	start := time.Now()
	defer func() { metrics.LiveKitSyncDuration.Observe(time.Since(start).Seconds()) }()

	activeRooms, err := s.rooms.ListActiveRooms(ctx)
	if err != nil {
		metrics.LiveKitSyncErrors.Inc()
		s.log.Warn().Err(err).Msg("failed to list rooms from LiveKit")
		return 0
	}

	pending, err := s.store.List(ctx, session.Filter{Status: session.StatusConnecting})
	if err != nil {
		metrics.LiveKitSyncErrors.Inc()
		s.log.Error().Err(err).Msg("failed to list connecting sessions")
		return 0
	}

	s.log.Debug().
		Int("livekit_rooms", len(activeRooms)).
		Int("connecting_sessions", len(pending)).
		Msg("sync cycle")

	activated := 0
	for _, sess := range pending {
		room, ok := activeRooms[sess.RoomName]
		if !ok || room.NumParticipants == 0 {
			continue
		}
		changed, err := s.activator.MarkRoomActive(ctx, sess.RoomName)
		if err != nil {
			metrics.LiveKitSyncErrors.Inc()
			s.log.Warn().Err(err).Str("room", sess.RoomName).Msg("failed to activate session")
			continue
		}
		if changed {
			activated++
			s.log.Info().
				Str("action", "activated").
				Str("room", sess.RoomName).
				Int("participants", room.NumParticipants).
				Msg("session updated")
		}
	}
	return activated
}
