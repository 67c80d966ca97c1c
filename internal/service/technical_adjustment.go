package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shriank296/subtle/internal/model"
	"github.com/shriank296/subtle/internal/repository"
)

// technicalAdjustmentService holds the listing use case: validation, page
// normalization and projection into the external envelope. No SQL, no HTTP.
type technicalAdjustmentService struct {
	repo repository.TechnicalAdjustmentRepository
	log  zerolog.Logger
}

func NewTechnicalAdjustmentService(repo repository.TechnicalAdjustmentRepository, logger zerolog.Logger) TechnicalAdjustmentService {
	l := logger.With().Str("module", "service").Str("component", "technical_adjustment").Logger()
	return &technicalAdjustmentService{repo: repo, log: l}
}

func (s *technicalAdjustmentService) List(ctx context.Context, params ListTechnicalAdjustmentsParams) (model.TechnicalAdjustmentPage, error) {
	start := time.Now()

	var ferrs []FieldError
	if params.InsurableInterestSetID == uuid.Nil {
		ferrs = append(ferrs, FieldError{Field: "insurable_interest_set_id", Message: "is required"})
	}
	if params.PolicyTermOptionID == uuid.Nil {
		ferrs = append(ferrs, FieldError{Field: "policy_term_option_id", Message: "is required"})
	}
	if params.PageSize > maxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be <= 200"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("technical adjustment listing validation failed")
		return model.TechnicalAdjustmentPage{}, err
	}

	page, pageSize := normalizePaging(params.Page, params.PageSize)
	filter := repository.AdjustmentFilter{
		InsurableInterestSetID: params.InsurableInterestSetID,
		PolicyTermOptionID:     params.PolicyTermOptionID,
	}
	res, err := s.repo.List(ctx, filter, repository.Page{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).
			Str("insurable_interest_set_id", params.InsurableInterestSetID.String()).
			Str("policy_term_option_id", params.PolicyTermOptionID.String()).
			Msg("list technical adjustments failed")
		return model.TechnicalAdjustmentPage{}, err
	}

	out := model.TechnicalAdjustmentPage{
		Meta:                 model.NewPageMeta(res.Total, page, pageSize),
		TechnicalAdjustments: projectAdjustments(res.Items),
	}
	s.log.Info().
		Dur("took", time.Since(start)).
		Int("total_items", res.Total).
		Int("page", page).
		Msg("technical adjustments listed")
	return out, nil
}

// projectAdjustments finalizes rows for serialization. List-valued fields must
// come out as empty arrays, not null, when the stored value was NULL.
func projectAdjustments(items []model.TechnicalAdjustment) []model.TechnicalAdjustment {
	out := make([]model.TechnicalAdjustment, len(items))
	for i, ta := range items {
		if ta.AssetTypes == nil {
			ta.AssetTypes = []string{}
		}
		if ta.Perils == nil {
			ta.Perils = []string{}
		}
		if ta.InsuredValueTypes == nil {
			ta.InsuredValueTypes = []string{}
		}
		out[i] = ta
	}
	return out
}
