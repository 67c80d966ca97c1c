// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "github.com/google/uuid"

// TechnicalAdjustment is a rating correction applied on top of a model-derived
// value, already denormalized with the two joined relations: ModelName comes
// from the model configuration and AdjustmentTypeIdentifierCode from the field
// definition. The JSON tags are the external contract, mixed casing included.
type TechnicalAdjustment struct {
	ID                           uuid.UUID `json:"technicalAdjustmentId"`
	ModelName                    string    `json:"model_name"`
	InsurableInterestSetID       uuid.UUID `json:"insurableInterestSetId"`
	PolicyTermOptionID           uuid.UUID `json:"policyTermOptionId"`
	QuoteOptionID                uuid.UUID `json:"quoteOptionId"`
	AssetTypes                   []string  `json:"assetTypes"`
	AppliesTo                    any       `json:"appliesTo"`
	Perils                       []string  `json:"perils"`
	InsuredValueTypes            []string  `json:"insuredValueTypes"`
	AdjustmentTypeIdentifierCode string    `json:"adjustmentTypeIdentifierCode"`
	AdjustmentValue              float64   `json:"adjustmentValue"`
	AdjustmentReason             string    `json:"adjustmentReason"`
	ReasonCategory               string    `json:"reasonCategory"`
}

// PageMeta describes the full matching set, not just the returned window.
type PageMeta struct {
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// NewPageMeta computes pagination metadata. A non-positive page size cannot
// divide the total, so total_pages falls back to a single page.
func NewPageMeta(totalItems, page, pageSize int) PageMeta {
	totalPages := 1
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return PageMeta{
		TotalItems: totalItems,
		TotalPages: totalPages,
		PageNumber: page,
		PageSize:   pageSize,
	}
}

// TechnicalAdjustmentPage is the externally exposed list envelope. The payload
// key is technicalAdjustments rather than a generic records field.
type TechnicalAdjustmentPage struct {
	Meta                 PageMeta              `json:"meta"`
	TechnicalAdjustments []TechnicalAdjustment `json:"technicalAdjustments"`
}
