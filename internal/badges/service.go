package badges

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
)

// Service awards badges and records them in the event log.
type Service struct {
	eventRepo store.EventRepo
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a badge service. A nil eventRepo skips persistence and a
// nil logger discards log output.
func NewService(eventRepo store.EventRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		eventRepo: eventRepo,
		logger:    logger.Named("badges"),
		now:       time.Now,
	}
}

// Award evaluates the catalog against s and fb, adds new badge IDs to s and
// persists a badge event for each. s must already include fb.
func (svc *Service) Award(ctx context.Context, s *stats.UserStats, fb *evaluator.Feedback, sessionID string) []Award {
	earned := Evaluate(s, fb)
	if len(earned) == 0 {
		return nil
	}

	now := svc.now()
	awards := make([]Award, 0, len(earned))
	for _, b := range earned {
		s.AddBadge(b.ID)
		award := Award{Badge: b, SessionID: sessionID, AwardedAt: now}
		svc.persist(ctx, award)
		awards = append(awards, award)
	}
	return awards
}

func (svc *Service) persist(ctx context.Context, award Award) {
	svc.logger.Info("badge awarded",
		zap.String("badge", award.Badge.ID),
		zap.String("session_id", award.SessionID))

	if svc.eventRepo == nil {
		return
	}
	err := svc.eventRepo.AppendBadge(ctx, store.BadgeEventData{
		BadgeID:   award.Badge.ID,
		Name:      award.Badge.Name,
		SessionID: award.SessionID,
		Reason:    award.Badge.Description,
	})
	if err != nil {
		svc.logger.Warn("failed to record badge event", zap.String("badge", award.Badge.ID), zap.Error(err))
	}
}
