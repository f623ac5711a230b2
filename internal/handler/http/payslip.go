package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/paydeck/payroll-backend-go/internal/domain/payslip"
	"github.com/paydeck/payroll-backend-go/internal/handler/http/response"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
	}
}

// Generate implements PayslipHandler.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode payslip generate request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

// Get implements PayslipHandler.
func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid payslip id", nil)
		return
	}

	result, err := h.payslipService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayslipHandler.
func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePayslipFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payslipService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parsePayslipFilter(r *http.Request) (payslip.PayslipFilter, error) {
	var filter payslip.PayslipFilter
	var errs validator.ValidationErrors
	q := r.URL.Query()

	if raw := q.Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive integer"})
		} else {
			filter.EmployeeID = &id
		}
	}
	if raw := q.Get("start_date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			filter.StartDate = &date
		}
	}
	if raw := q.Get("end_date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			filter.EndDate = &date
		}
	}

	if len(errs) > 0 {
		return payslip.PayslipFilter{}, errs
	}
	return filter, nil
}
