package overtime

import "context"

type Service interface {
	// Monthly per-employee overtime records
	GenerateMonthlyOvertimeReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// Department rollup for a month
	GenerateDepartmentOvertimeReport(ctx context.Context, req DepartmentReportRequest) (DepartmentReport, error)

	// Yearly compensatory-day entitlement per employee
	GenerateYearlyEntitlementReport(ctx context.Context, req YearlyReportRequest) (YearlyReport, error)
}
