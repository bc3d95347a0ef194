package callrecord

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

// DefaultLanguage is counted for records stored without a language.
const DefaultLanguage = "English"

// Service exposes the call log reads of the dashboard.
type Service interface {
	List(ctx context.Context, userID, agentID string) ([]*CallRecord, error)
	Analytics(ctx context.Context, userID string) (*Analytics, error)
}

type service struct {
	records Repository
	agents  agent.Repository
	log     zerolog.Logger
}

// NewService creates a call log service.
func NewService(records Repository, agents agent.Repository, log zerolog.Logger) Service {
	return &service{
		records: records,
		agents:  agents,
		log:     log.With().Str("component", "callrecord-service").Logger(),
	}
}

func (s *service) List(ctx context.Context, userID, agentID string) ([]*CallRecord, error) {
	records, err := s.records.List(ctx, userID, agentID)
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := lo.Uniq(lo.Map(records, func(r *CallRecord, _ int) string { return r.AgentID }))
	agents, err := s.agents.FindByIDs(ctx, ids)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"Failed to load agents", err)
	}
	for _, r := range records {
		if ag, ok := agents[r.AgentID]; ok {
			r.Agent = lo.ToPtr(ag.Summary())
		}
	}
	return records, nil
}

func (s *service) Analytics(ctx context.Context, userID string) (*Analytics, error) {
	records, err := s.records.List(ctx, userID, "")
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	return Summarize(records), nil
}

// Summarize aggregates records. An empty slice yields zero rates and empty tallies.
func Summarize(records []*CallRecord) *Analytics {
	out := &Analytics{
		TotalCalls: len(records),
		Languages:  map[string]int{},
	}

	for _, r := range records {
		switch r.Sentiment {
		case "positive":
			out.Sentiments.Positive++
		case "neutral":
			out.Sentiments.Neutral++
		case "negative":
			out.Sentiments.Negative++
		}
		switch r.Outcome {
		case OutcomeResolved:
			out.Outcomes.Resolved++
		case OutcomeEscalated:
			out.Outcomes.Escalated++
		case OutcomeAbandoned:
			out.Outcomes.Abandoned++
		}
		out.Languages[lo.Ternary(r.Language != "", r.Language, DefaultLanguage)]++
	}

	if len(records) == 0 {
		return out
	}

	total := lo.SumBy(records, func(r *CallRecord) int { return r.DurationSeconds })
	out.AvgDurationSeconds = int(math.Round(float64(total) / float64(len(records))))
	out.ContainmentRate = int(math.Round(float64(out.Outcomes.Resolved) / float64(len(records)) * 100))
	return out
}

func (s *service) listError(ctx context.Context, err error) error {
	s.log.Error().Err(err).Msg("call log query failed")
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
		"Failed to load call logs", err)
}
