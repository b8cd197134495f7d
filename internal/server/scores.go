package server

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	scoresv1 "github.com/Ajauregui69/livo-backend/gen/proto/scores/v1"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/scoring"
)

type ScoreService struct {
	scoresv1.UnimplementedScoresServiceServer
	scores *scoring.Service
	logger *slog.Logger
}

func NewScoreService(scores *scoring.Service, logger *slog.Logger) *ScoreService {
	return &ScoreService{scores: scores, logger: logger}
}

func (s *ScoreService) ComputeScore(ctx context.Context, req *scoresv1.ComputeScoreRequest) (*scoresv1.ComputeScoreResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	score, err := s.scores.Score(ctx, subjectID)
	if err != nil {
		s.logger.Error("score computation failed", "subject_id", subjectID, "error", err)
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("score computed", "subject_id", subjectID, "score", score.Score, "tier", score.RiskTier)
	return &scoresv1.ComputeScoreResponse{Score: toPBScore(score)}, nil
}

func (s *ScoreService) GetActiveScore(ctx context.Context, req *scoresv1.GetActiveScoreRequest) (*scoresv1.GetActiveScoreResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	score, err := s.scores.Active(ctx, subjectID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &scoresv1.GetActiveScoreResponse{Score: toPBScore(score)}, nil
}

func (s *ScoreService) ExpireScore(ctx context.Context, req *scoresv1.ExpireScoreRequest) (*scoresv1.ExpireScoreResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	if err := s.scores.Expire(ctx, subjectID); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &scoresv1.ExpireScoreResponse{}, nil
}

func (s *ScoreService) GetScoreHistory(ctx context.Context, req *scoresv1.GetScoreHistoryRequest) (*scoresv1.GetScoreHistoryResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	history, err := s.scores.History(ctx, subjectID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*scoresv1.CreditScore, 0, len(history))
	for _, score := range history {
		out = append(out, toPBScore(score))
	}
	return &scoresv1.GetScoreHistoryResponse{Scores: out}, nil
}

func toPBScore(score *ent.CreditScore) *scoresv1.CreditScore {
	out := &scoresv1.CreditScore{
		Id:                     score.ID.String(),
		SubjectId:              score.SubjectID.String(),
		Score:                  int32(score.Score),
		RiskTier:               score.RiskTier,
		EstimatedMonthlyIncome: score.EstimatedMonthlyIncome.String(),
		MaxLoan:                score.MaxLoan.String(),
		SuggestedDownPayment:   score.SuggestedDownPayment.String(),
		Recommendations:        score.Recommendations,
		Active:                 score.Active,
		ComputedAt:             score.ComputedAt.UTC().Format(time.RFC3339),
		ExpiresAt:              score.ExpiresAt.UTC().Format(time.RFC3339),
	}
	var bd scoring.FactorBreakdown
	if len(score.Breakdown) > 0 && json.Unmarshal(score.Breakdown, &bd) == nil {
		out.Breakdown = &scoresv1.FactorBreakdown{
			Income:     bd.Income,
			Employment: bd.Employment,
			Banking:    bd.Banking,
			Debt:       bd.Debt,
		}
	}
	return out
}
