package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shriank296/subtle/internal/model"
	"github.com/shriank296/subtle/internal/repository"
)

const defaultPageLimit = 50

func sanitizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}

type technicalAdjustmentRepository struct{ pool *pgxpool.Pool }

func NewTechnicalAdjustmentRepository(pool *pgxpool.Pool) repository.TechnicalAdjustmentRepository {
	return &technicalAdjustmentRepository{pool: pool}
}

// List runs the count and the joined fetch as two statements. A windowed
// COUNT(*) OVER() would be cheaper, but it returns nothing for a page past
// the end of the set and the contract requires true totals there, so the
// count stays separate.
//
// The two-level join resolves model_name through the model configuration and
// the adjustment type code through the field definition. ORDER BY ta.id keeps
// pagination stable across calls; the source tables have no natural order.
func (r *technicalAdjustmentRepository) List(ctx context.Context, f repository.AdjustmentFilter, p repository.Page) (repository.PageResult[model.TechnicalAdjustment], error) {
	var zero repository.PageResult[model.TechnicalAdjustment]
	if err := ensurePool(r.pool); err != nil {
		return zero, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM technical_adjustments
		 WHERE insurable_interest_set_id = $1 AND policy_term_option_id = $2`,
		f.InsurableInterestSetID, f.PolicyTermOptionID,
	).Scan(&total)
	if err != nil {
		return zero, repository.MapPgError(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ta.id,
		        mc.model_name,
		        ta.insurable_interest_set_id,
		        ta.policy_term_option_id,
		        ta.quote_option_id,
		        ta.asset_types,
		        ta.applies_to,
		        ta.perils,
		        ta.insured_value_types,
		        fd.adjustment_type_identifier_code,
		        ta.adjustment_value,
		        ta.adjustment_reason,
		        ta.reason_category
		 FROM technical_adjustments ta
		 JOIN technical_adjustment_model_fields mf ON mf.id = ta.model_field_id
		 JOIN technical_adjustment_fields fd ON fd.id = mf.field_id
		 JOIN technical_adjustment_model_configurations mc ON mc.id = mf.model_configuration_id
		 WHERE ta.insurable_interest_set_id = $1 AND ta.policy_term_option_id = $2
		 ORDER BY ta.id
		 LIMIT $3 OFFSET $4`,
		f.InsurableInterestSetID, f.PolicyTermOptionID, limit, offset,
	)
	if err != nil {
		return zero, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.TechnicalAdjustment]{
		Items: make([]model.TechnicalAdjustment, 0, limit),
		Total: total,
	}
	for rows.Next() {
		var ta model.TechnicalAdjustment
		if err := rows.Scan(
			&ta.ID,
			&ta.ModelName,
			&ta.InsurableInterestSetID,
			&ta.PolicyTermOptionID,
			&ta.QuoteOptionID,
			&ta.AssetTypes,
			&ta.AppliesTo,
			&ta.Perils,
			&ta.InsuredValueTypes,
			&ta.AdjustmentTypeIdentifierCode,
			&ta.AdjustmentValue,
			&ta.AdjustmentReason,
			&ta.ReasonCategory,
		); err != nil {
			return zero, repository.MapPgError(err)
		}
		res.Items = append(res.Items, ta)
	}
	if err := rows.Err(); err != nil {
		return zero, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.TechnicalAdjustmentRepository = (*technicalAdjustmentRepository)(nil)
