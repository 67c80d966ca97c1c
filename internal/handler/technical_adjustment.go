package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shriank296/subtle/internal/repository"
	"github.com/shriank296/subtle/internal/service"
	"github.com/shriank296/subtle/pkg/response"
)

type TechnicalAdjustmentHandler struct {
	svc service.TechnicalAdjustmentService
	log zerolog.Logger
}

func NewTechnicalAdjustmentHandler(svc service.TechnicalAdjustmentService, logger zerolog.Logger) *TechnicalAdjustmentHandler {
	l := logger.With().Str("module", "handler").Str("component", "technical_adjustment").Logger()
	return &TechnicalAdjustmentHandler{svc: svc, log: l}
}

func (h *TechnicalAdjustmentHandler) Register(r *gin.RouterGroup) {
	r.Group("/technical-adjustments").GET("", h.list)
}

// list handles GET /technical-adjustments. Query parsing stays here; anything
// past "is this a UUID / an integer" belongs to the service layer.
func (h *TechnicalAdjustmentHandler) list(c *gin.Context) {
	var ferrs []service.FieldError

	iisID := parseUUIDQuery(c, "insurable_interest_set_id", &ferrs)
	ptoID := parseUUIDQuery(c, "policy_term_option_id", &ferrs)
	page := parseIntQuery(c, "page", &ferrs)
	pageSize := parseIntQuery(c, "page_size", &ferrs)

	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	res, err := h.svc.List(c.Request.Context(), service.ListTechnicalAdjustmentsParams{
		InsurableInterestSetID: iisID,
		PolicyTermOptionID:     ptoID,
		Page:                   page,
		PageSize:               pageSize,
	})
	if err != nil {
		if !errors.Is(err, service.ErrInvalidInput) && !errors.Is(err, repository.ErrNotFound) {
			// Unexpected store failure: full detail to the log, opaque envelope to the caller.
			h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled database error")
		}
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func parseUUIDQuery(c *gin.Context, name string, ferrs *[]service.FieldError) uuid.UUID {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "is required"})
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "must be a valid UUID"})
		return uuid.Nil
	}
	return id
}

func parseIntQuery(c *gin.Context, name string, ferrs *[]service.FieldError) int {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0 // absent: service applies the default
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return n
}
