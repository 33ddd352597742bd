package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// dateInRange applies the filter's date range to a record date. The
// range only binds when both bounds are present and is inclusive on
// both ends. The second return is false when the record date does not
// parse; such records are excluded from the report rather than failing
// the whole run.
func dateInRange(filter domain.ReportFilter, date string) (in bool, ok bool) {
	if filter.StartDate == nil || filter.EndDate == nil {
		return true, true
	}
	d, err := domain.ParseDate(date)
	if err != nil {
		return false, false
	}
	start, err := domain.ParseDate(*filter.StartDate)
	if err != nil {
		return false, false
	}
	end, err := domain.ParseDate(*filter.EndDate)
	if err != nil {
		return false, false
	}
	return !d.Before(start) && !d.After(end), true
}

// FilterPayments applies the report filter to an in-memory payment set.
// It is pure: the same inputs always yield the same output. The second
// return counts records dropped for unparseable dates.
func FilterPayments(payments []domain.Payment, filter domain.ReportFilter) ([]domain.Payment, int) {
	kept := []domain.Payment{}
	excluded := 0
	for _, p := range payments {
		if filter.WorkerID != nil && p.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.SiteID != nil && (p.SiteID == nil || *p.SiteID != *filter.SiteID) {
			continue
		}
		in, ok := dateInRange(filter, p.PaymentDate)
		if !ok {
			excluded++
			continue
		}
		if !in {
			continue
		}
		kept = append(kept, p)
	}
	return kept, excluded
}

// FilterAdvances applies the report filter to an in-memory advance set.
// Advances carry no site reference, so the filter's SiteID is ignored.
func FilterAdvances(advances []domain.Advance, filter domain.ReportFilter) ([]domain.Advance, int) {
	kept := []domain.Advance{}
	excluded := 0
	for _, a := range advances {
		if filter.WorkerID != nil && a.WorkerID != *filter.WorkerID {
			continue
		}
		in, ok := dateInRange(filter, a.AdvanceDate)
		if !ok {
			excluded++
			continue
		}
		if !in {
			continue
		}
		kept = append(kept, a)
	}
	return kept, excluded
}

// FilterAttendance applies the report filter to an in-memory attendance set.
func FilterAttendance(records []domain.Attendance, filter domain.ReportFilter) ([]domain.Attendance, int) {
	kept := []domain.Attendance{}
	excluded := 0
	for _, r := range records {
		if filter.WorkerID != nil && r.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.SiteID != nil && r.SiteID != *filter.SiteID {
			continue
		}
		in, ok := dateInRange(filter, r.Date)
		if !ok {
			excluded++
			continue
		}
		if !in {
			continue
		}
		kept = append(kept, r)
	}
	return kept, excluded
}

// SumPaymentAmounts totals a payment set with exact decimal arithmetic.
func SumPaymentAmounts(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// SumAdvanceAmounts totals an advance set with exact decimal arithmetic.
func SumAdvanceAmounts(advances []domain.Advance) decimal.Decimal {
	total := decimal.Zero
	for _, a := range advances {
		total = total.Add(a.Amount)
	}
	return total
}

// ReportingService builds reports by loading the relevant record sets
// and running the pure filter functions over them.
type ReportingService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingSvcFacade {
	return &ReportingService{repos: repos}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func (s *ReportingService) logExcluded(ctx context.Context, report string, excluded int) {
	if excluded > 0 {
		s.LogWarn(ctx, "Records with unparseable dates excluded from report", "report", report, "excluded", excluded)
	}
}

func (s *ReportingService) GenerateWorkerList(ctx context.Context) (*domain.WorkerListReport, error) {
	workers, err := s.repos.WorkerRepo.FindWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers for report: %w", err)
	}
	return &domain.WorkerListReport{Workers: workers, Count: len(workers)}, nil
}

func (s *ReportingService) GeneratePaymentHistory(ctx context.Context, filter domain.ReportFilter) (*domain.PaymentReport, error) {
	payments, err := s.repos.PaymentRepo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for report: %w", err)
	}
	kept, excluded := FilterPayments(payments, filter)
	s.logExcluded(ctx, "payment_history", excluded)
	return &domain.PaymentReport{
		Payments:    kept,
		Count:       len(kept),
		TotalAmount: SumPaymentAmounts(kept),
	}, nil
}

func (s *ReportingService) GenerateAdvanceReport(ctx context.Context, filter domain.ReportFilter) (*domain.AdvanceReport, error) {
	advances, err := s.repos.AdvanceRepo.FindAdvances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load advances for report: %w", err)
	}
	kept, excluded := FilterAdvances(advances, filter)
	s.logExcluded(ctx, "advance_payment", excluded)
	return &domain.AdvanceReport{
		Advances:    kept,
		Count:       len(kept),
		TotalAmount: SumAdvanceAmounts(kept),
	}, nil
}

func (s *ReportingService) GenerateAttendanceReport(ctx context.Context, filter domain.ReportFilter) (*domain.AttendanceReport, error) {
	records, err := s.repos.AttendanceRepo.FindAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for report: %w", err)
	}
	kept, excluded := FilterAttendance(records, filter)
	s.logExcluded(ctx, "attendance", excluded)
	return &domain.AttendanceReport{Records: kept, Count: len(kept)}, nil
}

func (s *ReportingService) GenerateSiteSummary(ctx context.Context, filter domain.ReportFilter) (*domain.SiteSummaryReport, error) {
	var sites []domain.Site
	if filter.SiteID != nil {
		site, err := s.repos.SiteRepo.FindSiteByID(ctx, *filter.SiteID)
		if err != nil {
			return nil, err
		}
		sites = []domain.Site{*site}
	} else {
		var err error
		sites, err = s.repos.SiteRepo.FindSites(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load sites for report: %w", err)
		}
	}

	rows := make([]domain.SiteSummaryRow, 0, len(sites))
	for _, site := range sites {
		count, err := s.repos.SiteRepo.CountWorkersForSite(ctx, site.SiteID)
		if err != nil {
			return nil, fmt.Errorf("failed to count workers for site %d: %w", site.SiteID, err)
		}
		rows = append(rows, domain.SiteSummaryRow{Site: site, WorkerCount: count})
	}
	return &domain.SiteSummaryReport{Rows: rows, Count: len(rows)}, nil
}

func formatDateRange(filter domain.ReportFilter) string {
	if filter.StartDate == nil || filter.EndDate == nil {
		return ""
	}
	return *filter.StartDate + " to " + *filter.EndDate
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func boolYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// BuildDocument generates the selected report and lays it out as a
// renderer-agnostic table.
func (s *ReportingService) BuildDocument(ctx context.Context, filter domain.ReportFilter) (*domain.ReportDocument, error) {
	switch filter.Type {
	case domain.ReportWorkerList:
		report, err := s.GenerateWorkerList(ctx)
		if err != nil {
			return nil, err
		}
		doc := &domain.ReportDocument{
			Title:   "Worker List Report",
			Columns: []string{"ID", "Name", "Phone", "Role", "Join Date", "Active"},
			Summary: fmt.Sprintf("Total Workers: %d", report.Count),
		}
		for _, w := range report.Workers {
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(w.WorkerID, 10), w.Name, w.PhoneNumber, w.Role, w.JoinDate, boolYesNo(w.IsActive),
			})
		}
		return doc, nil

	case domain.ReportPaymentHistory:
		report, err := s.GeneratePaymentHistory(ctx, filter)
		if err != nil {
			return nil, err
		}
		doc := &domain.ReportDocument{
			Title:     "Payment History Report",
			DateRange: formatDateRange(filter),
			Columns:   []string{"ID", "Worker", "Site", "Date", "Amount", "Mode", "Description"},
			Summary:   fmt.Sprintf("Total Payments: %d | Total Amount: %s", report.Count, report.TotalAmount.StringFixed(2)),
		}
		for _, p := range report.Payments {
			site := "-"
			if p.SiteID != nil {
				site = strconv.FormatInt(*p.SiteID, 10)
			}
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(p.PaymentID, 10),
				strconv.FormatInt(p.WorkerID, 10),
				site,
				p.PaymentDate,
				p.Amount.StringFixed(2),
				string(p.PaymentMode),
				p.Description,
			})
		}
		return doc, nil

	case domain.ReportAdvancePayment:
		report, err := s.GenerateAdvanceReport(ctx, filter)
		if err != nil {
			return nil, err
		}
		doc := &domain.ReportDocument{
			Title:     "Advance Payment Report",
			DateRange: formatDateRange(filter),
			Columns:   []string{"ID", "Worker", "Date", "Amount", "Reason", "Mode", "Recovered"},
			Summary:   fmt.Sprintf("Total Advances: %d | Total Amount: %s", report.Count, report.TotalAmount.StringFixed(2)),
		}
		for _, a := range report.Advances {
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(a.AdvanceID, 10),
				strconv.FormatInt(a.WorkerID, 10),
				a.AdvanceDate,
				a.Amount.StringFixed(2),
				a.Reason,
				string(a.PaymentMode),
				boolYesNo(a.IsRecovered),
			})
		}
		return doc, nil

	case domain.ReportAttendance:
		report, err := s.GenerateAttendanceReport(ctx, filter)
		if err != nil {
			return nil, err
		}
		doc := &domain.ReportDocument{
			Title:     "Attendance Report",
			DateRange: formatDateRange(filter),
			Columns:   []string{"ID", "Worker", "Site", "Date", "Status", "Hours", "Notes"},
			Summary:   fmt.Sprintf("Total Records: %d", report.Count),
		}
		for _, r := range report.Records {
			hours := "-"
			if r.HoursWorked != nil {
				hours = strconv.FormatFloat(*r.HoursWorked, 'f', 1, 64)
			}
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(r.AttendanceID, 10),
				strconv.FormatInt(r.WorkerID, 10),
				strconv.FormatInt(r.SiteID, 10),
				r.Date,
				string(r.Status),
				hours,
				strOrDash(r.Notes),
			})
		}
		return doc, nil

	case domain.ReportSiteSummary:
		report, err := s.GenerateSiteSummary(ctx, filter)
		if err != nil {
			return nil, err
		}
		doc := &domain.ReportDocument{
			Title:   "Site Summary Report",
			Columns: []string{"ID", "Name", "Client", "Status", "Start Date", "Workers"},
			Summary: fmt.Sprintf("Total Sites: %d", report.Count),
		}
		for _, row := range report.Rows {
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(row.Site.SiteID, 10),
				row.Site.Name,
				row.Site.ClientName,
				string(row.Site.Status),
				row.Site.StartDate,
				strconv.Itoa(row.WorkerCount),
			})
		}
		return doc, nil
	}

	return nil, fmt.Errorf("unknown report type %q: %w", filter.Type, apperrors.ErrValidation)
}
