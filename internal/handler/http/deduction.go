package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/paydeck/payroll-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	ruleService deduction.RuleService
}

func NewDeductionHandler(ruleService deduction.RuleService) DeductionHandler {
	return &deductionHandlerImpl{
		ruleService: ruleService,
	}
}

// Create implements DeductionHandler.
func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode deduction rule create request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction rule created", result)
}

// Update implements DeductionHandler.
func (h *deductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid deduction rule id", nil)
		return
	}

	var req deduction.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode deduction rule update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.ruleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction rule updated", result)
}

// List implements DeductionHandler.
func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.ruleService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
