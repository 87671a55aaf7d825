package http

import (
	"encoding/json"
	"net/http"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	// Monthly per-employee overtime records
	GetMonthlyOvertimeReport(w http.ResponseWriter, r *http.Request)

	// Department rollup
	GetDepartmentOvertimeReport(w http.ResponseWriter, r *http.Request)

	// Yearly entitlement rollup
	GetYearlyEntitlementReport(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// GetMonthlyOvertimeReport handles POST /reports/overtime/monthly.
// The body carries the period plus the full input snapshot; the external sync
// collaborator owns the data, this service only computes.
func (h *overtimeHandlerImpl) GetMonthlyOvertimeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req overtime.MonthlyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.overtimeService.GenerateMonthlyOvertimeReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentOvertimeReport handles POST /reports/overtime/departments
func (h *overtimeHandlerImpl) GetDepartmentOvertimeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req overtime.DepartmentReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.overtimeService.GenerateDepartmentOvertimeReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetYearlyEntitlementReport handles POST /reports/overtime/yearly
func (h *overtimeHandlerImpl) GetYearlyEntitlementReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req overtime.YearlyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.overtimeService.GenerateYearlyEntitlementReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
