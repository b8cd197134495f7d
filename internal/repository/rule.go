package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/rules"
)

type CreateRuleParams struct {
	Name            string
	DocType         string
	FieldName       string
	Pattern         string
	FieldType       string
	ContextKeywords []string
	Priority        int
	Description     string
}

type RuleRepository interface {
	Create(ctx context.Context, p CreateRuleParams) (*ent.ExtractionRule, error)
	List(ctx context.Context, docType string) ([]*ent.ExtractionRule, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// ActiveRules satisfies rules.Source.
	ActiveRules(ctx context.Context, docType constants.DocType) ([]rules.Rule, error)
	// RecordSuccess and RecordFailure satisfy rules.StatsRecorder. Both use
	// SET count = count + 1 so concurrent workers never lose increments.
	RecordSuccess(ctx context.Context, ruleID uuid.UUID) error
	RecordFailure(ctx context.Context, ruleID uuid.UUID) error
}

type ruleRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRuleRepository(entc *ent.Client, log *slog.Logger) RuleRepository {
	return &ruleRepo{ent: entc, log: log}
}

func (r *ruleRepo) Create(ctx context.Context, p CreateRuleParams) (*ent.ExtractionRule, error) {
	rule, err := r.ent.ExtractionRule.
		Create().
		SetRuleName(p.Name).
		SetDocType(p.DocType).
		SetFieldName(p.FieldName).
		SetPattern(p.Pattern).
		SetFieldType(p.FieldType).
		SetContextKeywords(p.ContextKeywords).
		SetPriority(p.Priority).
		SetDescription(p.Description).
		Save(ctx)
	if err != nil {
		r.log.Error("rule create failed", "name", p.Name, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to create extraction rule")
	}
	r.log.Info("rule created", "rule_id", rule.ID, "doc_type", p.DocType, "field", p.FieldName)
	return rule, nil
}

func (r *ruleRepo) List(ctx context.Context, docType string) ([]*ent.ExtractionRule, error) {
	q := r.ent.ExtractionRule.Query()
	if docType != "" {
		q = q.Where(extractionrule.DocType(docType))
	}
	out, err := q.
		Order(ent.Desc(extractionrule.FieldPriority), ent.Asc(extractionrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to list extraction rules")
	}
	return out, nil
}

func (r *ruleRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.ent.ExtractionRule.
		UpdateOneID(id).
		SetActive(active).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.WrapError(common.ErrNotFound, "extraction rule not found")
	}
	if err != nil {
		return common.WrapError(common.ErrDatabase, "failed to update extraction rule")
	}
	return nil
}

func (r *ruleRepo) ActiveRules(ctx context.Context, docType constants.DocType) ([]rules.Rule, error) {
	rows, err := r.ent.ExtractionRule.
		Query().
		Where(
			extractionrule.DocType(string(docType)),
			extractionrule.Active(true),
		).
		Order(ent.Desc(extractionrule.FieldPriority), ent.Asc(extractionrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("active rules query failed", "doc_type", docType, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to load active rules")
	}
	out := make([]rules.Rule, 0, len(rows))
	for _, row := range rows {
		out = append(out, rules.Rule{
			ID:              row.ID,
			Name:            row.RuleName,
			DocType:         constants.DocType(row.DocType),
			FieldName:       row.FieldName,
			Pattern:         row.Pattern,
			FieldType:       constants.FieldType(row.FieldType),
			ContextKeywords: row.ContextKeywords,
			Priority:        row.Priority,
			SuccessCount:    row.SuccessCount,
			FailureCount:    row.FailureCount,
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}

func (r *ruleRepo) RecordSuccess(ctx context.Context, ruleID uuid.UUID) error {
	_, err := r.ent.ExtractionRule.
		UpdateOneID(ruleID).
		AddSuccessCount(1).
		Save(ctx)
	if err != nil {
		r.log.Error("rule success increment failed", "rule_id", ruleID, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to record rule success")
	}
	return nil
}

func (r *ruleRepo) RecordFailure(ctx context.Context, ruleID uuid.UUID) error {
	_, err := r.ent.ExtractionRule.
		UpdateOneID(ruleID).
		AddFailureCount(1).
		Save(ctx)
	if err != nil {
		r.log.Error("rule failure increment failed", "rule_id", ruleID, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to record rule failure")
	}
	return nil
}
