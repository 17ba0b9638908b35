package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/circuitbreaker"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/presence"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000

	// keeps (page-1)*limit far from overflowing the OFFSET
	maxHistoryPage = 100000
)

// PresenceUC implements the location ingestion service. All table and subscriber state
// is owned by the goroutine running Run; other goroutines reach it only through dispatch.
type PresenceUC struct {
	cfg     models.PresenceConfig
	mirror  presence.PresenceRepo
	history presence.HistoryRepo
	alerts  presence.AlertGW

	ops      chan func()
	sink     chan sinkJob
	breakers map[string]*circuitbreaker.CircuitBreaker
	stopped  chan struct{}
	now      func() time.Time

	// owned by the dispatch loop
	table       map[string]*models.PositionSample
	subscribers map[string]presence.Subscriber
	userIDs     map[string]string
}

// NewPresenceUC creates a new presence use case. mirror, history and alerts are optional
// and may be nil.
func NewPresenceUC(
	cfg models.PresenceConfig,
	mirror presence.PresenceRepo,
	history presence.HistoryRepo,
	alerts presence.AlertGW,
) *PresenceUC {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.SinkBuffer <= 0 {
		cfg.SinkBuffer = 1024
	}
	if cfg.SinkTimeout <= 0 {
		cfg.SinkTimeout = 2 * time.Second
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 5
	}

	return &PresenceUC{
		cfg:         cfg,
		mirror:      mirror,
		history:     history,
		alerts:      alerts,
		ops:         make(chan func(), cfg.QueueSize),
		sink:        make(chan sinkJob, cfg.SinkBuffer),
		breakers:    newBreakers(cfg),
		stopped:     make(chan struct{}),
		now:         models.Now,
		table:       make(map[string]*models.PositionSample),
		subscribers: make(map[string]presence.Subscriber),
		userIDs:     make(map[string]string),
	}
}

// Run executes posted operations one at a time until ctx is cancelled. Pending sink jobs
// are flushed before it returns.
func (uc *PresenceUC) Run(ctx context.Context) error {
	sinkDone := make(chan struct{})
	go func() {
		defer close(sinkDone)
		uc.runSink()
	}()

	logger.Info("Presence dispatch loop started",
		logger.Int("queue_size", cap(uc.ops)),
		logger.Int("sink_buffer", cap(uc.sink)))

	defer func() {
		close(uc.stopped)
		close(uc.sink)
		<-sinkDone
		logger.Info("Presence dispatch loop stopped")
	}()

	for {
		select {
		case op := <-uc.ops:
			op()
		case <-ctx.Done():
			return nil
		}
	}
}

// dispatch posts op to the loop and waits until it has run. Once posted, op always runs
// to completion unless the loop stops first, so results written by op are safe to read
// after a nil return.
func (uc *PresenceUC) dispatch(ctx context.Context, op func()) error {
	done := make(chan struct{})
	wrapped := func() {
		op()
		close(done)
	}

	select {
	case uc.ops <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-uc.stopped:
		return presence.ErrStopped
	}

	select {
	case <-done:
		return nil
	case <-uc.stopped:
		select {
		case <-done:
			return nil
		default:
			return presence.ErrStopped
		}
	}
}

// broadcast sends one event to every subscriber. It runs on the loop and never blocks:
// a subscriber whose queue is full misses the event.
func (uc *PresenceUC) broadcast(event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to encode broadcast",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	raw := json.RawMessage(payload)
	dropped := 0
	for _, sub := range uc.subscribers {
		if !sub.Send(event, raw) {
			dropped++
		}
	}
	if dropped > 0 {
		logger.Debug("Broadcast dropped for slow subscribers",
			logger.String("event", event),
			logger.Int("dropped", dropped),
			logger.Int("subscribers", len(uc.subscribers)))
	}
}

// Connect registers sub under identity and greets it
func (uc *PresenceUC) Connect(ctx context.Context, identity, userID string, sub presence.Subscriber) error {
	return uc.dispatch(ctx, func() {
		uc.subscribers[identity] = sub
		if userID != "" {
			uc.userIDs[identity] = userID
		}
		sub.Send(constants.EventConnected, models.Connected{ID: identity, UserID: userID})

		logger.Info("Identity connected",
			logger.Identity(identity),
			logger.String("user_id", userID),
			logger.Int("subscribers", len(uc.subscribers)))
	})
}

// Submit validates req outside the loop, then upserts and broadcasts the sample. The
// sender is a subscriber like any other and receives its own location-update.
func (uc *PresenceUC) Submit(ctx context.Context, identity string, req *models.SubmitLocationRequest) (*models.PositionSample, error) {
	sample, err := buildSample(identity, req, uc.now())
	if err != nil {
		return nil, err
	}

	err = uc.dispatch(ctx, func() {
		sample.UserID = uc.userIDs[identity]
		uc.table[identity] = sample
		uc.broadcast(constants.EventLocationUpdate, sample)

		stored := *sample
		if uc.mirror != nil {
			uc.enqueueSink(targetMirror, "mirror_save", identity, func(ctx context.Context) error {
				return uc.mirror.SaveLatest(ctx, &stored)
			})
		}
		if uc.history != nil {
			uc.enqueueSink(targetHistory, "history_store", identity, func(ctx context.Context) error {
				return uc.history.StoreSample(ctx, &stored)
			})
		}
	})
	if err != nil {
		return nil, err
	}

	result := *sample
	return &result, nil
}

// Snapshot returns a copy of the table
func (uc *PresenceUC) Snapshot(ctx context.Context) (map[string]*models.PositionSample, error) {
	var snapshot map[string]*models.PositionSample
	err := uc.dispatch(ctx, func() {
		snapshot = make(map[string]*models.PositionSample, len(uc.table))
		for id, sample := range uc.table {
			c := *sample
			snapshot[id] = &c
		}
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Disconnect removes identity and broadcasts identity-left to those who remain. An
// identity that is neither subscribed nor in the table is ignored.
func (uc *PresenceUC) Disconnect(ctx context.Context, identity string) error {
	return uc.dispatch(ctx, func() {
		_, inTable := uc.table[identity]
		_, subscribed := uc.subscribers[identity]
		if !inTable && !subscribed {
			return
		}

		delete(uc.table, identity)
		delete(uc.subscribers, identity)
		delete(uc.userIDs, identity)
		uc.broadcast(constants.EventIdentityLeft, identity)

		if inTable && uc.mirror != nil {
			uc.enqueueSink(targetMirror, "mirror_remove", identity, func(ctx context.Context) error {
				return uc.mirror.RemoveLatest(ctx, identity)
			})
		}

		logger.Info("Identity disconnected",
			logger.Identity(identity),
			logger.Int("subscribers", len(uc.subscribers)))
	})
}

// PanicAlert tags req with the sender and a server timestamp and broadcasts it to every
// subscriber. Delivery is fire-and-forget; the alert is also published for auditing.
func (uc *PresenceUC) PanicAlert(ctx context.Context, identity string, req *models.PanicAlertRequest) (*models.PanicAlert, error) {
	if req == nil {
		req = &models.PanicAlertRequest{}
	}

	alert := &models.PanicAlert{
		TouristID:           identity,
		Type:                req.Type,
		Location:            req.Location,
		Timestamp:           uc.now(),
		ClientTimestamp:     req.Timestamp,
		DeclaredSafetyScore: req.DeclaredSafetyScore,
		Extra:               req.Extra,
	}
	if alert.Type == "" {
		alert.Type = models.AlertTypePanic
	}

	err := uc.dispatch(ctx, func() {
		alert.UserID = uc.userIDs[identity]
		uc.broadcast(constants.EventPanicAlert, alert)

		published := *alert
		if uc.alerts != nil {
			uc.enqueueSink(targetAlerts, "alert_publish", identity, func(ctx context.Context) error {
				return uc.alerts.PublishPanicAlert(ctx, &published)
			})
		}

		logger.Warn("Panic alert raised",
			logger.Identity(identity),
			logger.Position(alert.Location.Lat, alert.Location.Lng),
			logger.Int("subscribers", len(uc.subscribers)))
	})
	if err != nil {
		return nil, err
	}

	result := *alert
	return &result, nil
}

// Nearby lists identities within radiusMeters of pos, nearest first. The shared mirror is
// used when configured; the local table answers otherwise or when the mirror fails.
func (uc *PresenceUC) Nearby(ctx context.Context, pos models.Location, radiusMeters float64, limit int) ([]models.NearbyTourist, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if uc.mirror != nil {
		found, err := uc.mirror.Nearby(ctx, pos, radiusMeters, limit)
		if err == nil {
			for i := range found {
				if sample, ok := snapshot[found[i].ID]; ok {
					found[i].Sample = sample
				}
			}
			return found, nil
		}
		logger.WarnCtx(ctx, "Mirror nearby query failed, using local table", logger.Err(err))
	}

	found := make([]models.NearbyTourist, 0)
	for id, sample := range snapshot {
		distance := utils.HaversineMeters(pos, sample.Location())
		if distance <= radiusMeters {
			found = append(found, models.NearbyTourist{ID: id, DistanceMeters: distance, Sample: sample})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].DistanceMeters == found[j].DistanceMeters {
			return found[i].ID < found[j].ID
		}
		return found[i].DistanceMeters < found[j].DistanceMeters
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

// History returns a page of stored samples
func (uc *PresenceUC) History(ctx context.Context, filter models.HistoryFilter) (*models.HistoryPage, error) {
	if uc.history == nil {
		return nil, presence.ErrHistoryDisabled
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Page > maxHistoryPage {
		filter.Page = maxHistoryPage
	}
	filter.Limit = normalizeLimit(filter.Limit)
	return uc.history.History(ctx, filter)
}

// HighRisk returns samples since the given time whose safety score is below maxScore
func (uc *PresenceUC) HighRisk(ctx context.Context, maxScore float64, since time.Time, limit int) ([]*models.PositionSample, error) {
	if uc.history == nil {
		return nil, presence.ErrHistoryDisabled
	}
	return uc.history.HighRisk(ctx, maxScore, since, normalizeLimit(limit))
}

// Stats summarises stored samples since the given time, optionally for one tourist
func (uc *PresenceUC) Stats(ctx context.Context, touristID string, since time.Time) (*models.LocationStats, error) {
	if uc.history == nil {
		return nil, presence.ErrHistoryDisabled
	}
	return uc.history.Stats(ctx, touristID, since)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
