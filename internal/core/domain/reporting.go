package domain

import "github.com/shopspring/decimal"

// ReportType selects which record set a report is built from.
type ReportType string

const (
	ReportWorkerList     ReportType = "WORKER_LIST"
	ReportPaymentHistory ReportType = "PAYMENT_HISTORY"
	ReportAdvancePayment ReportType = "ADVANCE_PAYMENT"
	ReportSiteSummary    ReportType = "SITE_SUMMARY"
	ReportAttendance     ReportType = "ATTENDANCE"
)

// IsValid reports whether t is one of the known report types.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportWorkerList, ReportPaymentHistory, ReportAdvancePayment,
		ReportSiteSummary, ReportAttendance:
		return true
	}
	return false
}

// ExportFormat selects the rendered document format.
type ExportFormat string

const (
	ExportPDF   ExportFormat = "PDF"
	ExportExcel ExportFormat = "EXCEL"
)

// IsValid reports whether f is one of the known export formats.
func (f ExportFormat) IsValid() bool {
	return f == ExportPDF || f == ExportExcel
}

// ReportFilter drives the report filter engine. StartDate/EndDate are
// only applied when both are present; the range is inclusive on both
// ends. WorkerID and SiteID are optional equality filters.
type ReportFilter struct {
	Type      ReportType
	StartDate *string
	EndDate   *string
	WorkerID  *int64
	SiteID    *int64
}

// PaymentReport is the filtered payment set with its aggregate total.
type PaymentReport struct {
	Payments    []Payment       `json:"payments"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// AdvanceReport is the filtered advance set with its aggregate total.
type AdvanceReport struct {
	Advances    []Advance       `json:"advances"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// AttendanceReport is the filtered attendance set.
type AttendanceReport struct {
	Records []Attendance `json:"records"`
	Count   int          `json:"count"`
}

// WorkerListReport lists all workers on the books.
type WorkerListReport struct {
	Workers []Worker `json:"workers"`
	Count   int      `json:"count"`
}

// SiteSummaryRow is one site with its active worker headcount.
type SiteSummaryRow struct {
	Site        Site `json:"site"`
	WorkerCount int  `json:"workerCount"`
}

// SiteSummaryReport lists sites (optionally one) with headcounts.
type SiteSummaryReport struct {
	Rows  []SiteSummaryRow `json:"rows"`
	Count int              `json:"count"`
}

// DashboardSummary holds the derived display values for the home screen.
type DashboardSummary struct {
	TotalWorkers   int       `json:"totalWorkers"`
	ActiveWorkers  int       `json:"activeWorkers"`
	TotalSites     int       `json:"totalSites"`
	ActiveSites    int       `json:"activeSites"`
	RecentPayments []Payment `json:"recentPayments"`
}
