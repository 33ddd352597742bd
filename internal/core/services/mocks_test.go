package services_test

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

// MockWorkerRepository is a mock implementation of the worker repository facade.
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindActiveWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) SearchWorkers(ctx context.Context, query string) ([]domain.Worker, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindWorkersBySite(ctx context.Context, siteID int64) ([]domain.Worker, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) CountActiveWorkers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkerRepository) CountWorkers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (int64, error) {
	args := m.Called(ctx, worker)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) DeleteWorker(ctx context.Context, workerID int64) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

// MockSiteRepository is a mock implementation of the site repository facade.
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) FindSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) FindSitesByStatus(ctx context.Context, status domain.SiteStatus) ([]domain.Site, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) SearchSites(ctx context.Context, query string) ([]domain.Site, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) FindSitesByStartDateRange(ctx context.Context, startDate, endDate string) ([]domain.Site, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) CountWorkersForSite(ctx context.Context, siteID int64) (int, error) {
	args := m.Called(ctx, siteID)
	return args.Int(0), args.Error(1)
}

func (m *MockSiteRepository) CountSitesByStatus(ctx context.Context, status domain.SiteStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockSiteRepository) CountSites(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSiteRepository) SaveSite(ctx context.Context, site domain.Site) (int64, error) {
	args := m.Called(ctx, site)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSiteRepository) UpdateSite(ctx context.Context, site domain.Site) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) DeleteSite(ctx context.Context, siteID int64) error {
	args := m.Called(ctx, siteID)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of the payment repository facade.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsForWorker(ctx context.Context, workerID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsForSite(ctx context.Context, siteID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsForMonthYear(ctx context.Context, month, year int) ([]domain.Payment, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Payment, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumPaymentsForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SumPaymentsForSite(ctx context.Context, siteID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, siteID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SumPaymentsForMonthYear(ctx context.Context, month, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// MockAdvanceRepository is a mock implementation of the advance repository facade.
type MockAdvanceRepository struct {
	mock.Mock
}

func (m *MockAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	args := m.Called(ctx, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}

func (m *MockAdvanceRepository) FindAdvances(ctx context.Context) ([]domain.Advance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}

func (m *MockAdvanceRepository) FindAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}

func (m *MockAdvanceRepository) FindUnsettledAdvancesForWorker(ctx context.Context, workerID int64) ([]domain.Advance, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}

func (m *MockAdvanceRepository) FindAdvancesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Advance, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}

func (m *MockAdvanceRepository) SumUnsettledAdvancesForWorker(ctx context.Context, workerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.Advance) (int64, error) {
	args := m.Called(ctx, advance)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdvanceRepository) UpdateAdvance(ctx context.Context, advance domain.Advance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockAdvanceRepository) SettleAdvances(ctx context.Context, advanceIDs []int64) error {
	args := m.Called(ctx, advanceIDs)
	return args.Error(0)
}

func (m *MockAdvanceRepository) DeleteAdvance(ctx context.Context, advanceID int64) error {
	args := m.Called(ctx, advanceID)
	return args.Error(0)
}

// MockAttendanceRepository is a mock implementation of the attendance repository facade.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	args := m.Called(ctx, attendanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendance(ctx context.Context) ([]domain.Attendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceForWorker(ctx context.Context, workerID int64) ([]domain.Attendance, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceForSite(ctx context.Context, siteID int64) ([]domain.Attendance, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceForDate(ctx context.Context, date string) ([]domain.Attendance, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceForWorkerInDateRange(ctx context.Context, workerID int64, startDate, endDate string) ([]domain.Attendance, error) {
	args := m.Called(ctx, workerID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) CountAttendanceByStatus(ctx context.Context, workerID int64, status domain.AttendanceStatus, startDate, endDate string) (int, error) {
	args := m.Called(ctx, workerID, status, startDate, endDate)
	return args.Int(0), args.Error(1)
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) (int64, error) {
	args := m.Called(ctx, attendance)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) DeleteAttendance(ctx context.Context, attendanceID int64) error {
	args := m.Called(ctx, attendanceID)
	return args.Error(0)
}
