package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/core/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// MockExpenseSvc is a mock for the expense service facade. Shared with
// the session service tests.
type MockExpenseSvc struct {
	mock.Mock
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseSvc)(nil)

func (m *MockExpenseSvc) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseSvc) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseSvc) PeriodSummary(ctx context.Context, period domain.ExportPeriod) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

func (m *MockExpenseSvc) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseSvc) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseSvc) RemoveExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

type ExportServiceTestSuite struct {
	suite.Suite
	mockReader *MockExpenseSvc
	service    portssvc.ExportSvcFacade
	ctx        context.Context
	now        time.Time
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockReader = new(MockExpenseSvc)
	suite.now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)
	suite.service = services.NewExportService(suite.mockReader, services.WithExportClock(func() time.Time {
		return suite.now
	}))
	suite.ctx = context.Background()
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (suite *ExportServiceTestSuite) TestExportCSV() {
	records := []domain.Expense{
		{
			ExpenseID:   "a",
			Amount:      decimal.RequireFromString("12.5"),
			Category:    "Food",
			Description: "lunch",
			Date:        time.Date(2024, 5, 20, 13, 0, 0, 0, time.Local),
		},
		{
			ExpenseID: "b",
			Amount:    decimal.RequireFromString("3"),
			Category:  "Transport",
			Date:      time.Date(2024, 5, 18, 8, 0, 0, 0, time.Local),
		},
	}
	suite.mockReader.On("ListExpenses", suite.ctx).Return(records, nil).Once()

	data, err := suite.service.ExportCSV(suite.ctx, domain.PeriodWeek)

	suite.Require().NoError(err)
	want := "Date,Category,Amount,Description\n" +
		"2024-05-20,Food,12.50,lunch\n" +
		"2024-05-18,Transport,3.00,\n"
	suite.Equal(want, string(data))
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportCSV_EmptyPeriod() {
	records := []domain.Expense{
		{
			ExpenseID: "old",
			Amount:    decimal.RequireFromString("9"),
			Category:  "Food",
			Date:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local),
		},
	}
	suite.mockReader.On("ListExpenses", suite.ctx).Return(records, nil).Once()

	data, err := suite.service.ExportCSV(suite.ctx, domain.PeriodWeek)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExportEmpty)
	suite.Nil(data)
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportCSV_InvalidPeriod() {
	data, err := suite.service.ExportCSV(suite.ctx, domain.ExportPeriod("fortnight"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(data)
	suite.mockReader.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything)
}

func (suite *ExportServiceTestSuite) TestExportCSV_StoreFailure() {
	storeErr := errors.New("listing expenses: connection refused")
	suite.mockReader.On("ListExpenses", suite.ctx).Return(nil, storeErr).Once()

	data, err := suite.service.ExportCSV(suite.ctx, domain.PeriodMonth)

	suite.Require().Error(err)
	suite.ErrorIs(err, storeErr)
	suite.Nil(data)
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportPDF() {
	records := []domain.Expense{
		{
			ExpenseID:   "a",
			Amount:      decimal.RequireFromString("12.5"),
			Category:    "Food",
			Description: "lunch",
			Date:        time.Date(2024, 5, 20, 13, 0, 0, 0, time.Local),
		},
	}
	suite.mockReader.On("ListExpenses", suite.ctx).Return(records, nil).Once()

	data, err := suite.service.ExportPDF(suite.ctx, domain.PeriodMonth)

	suite.Require().NoError(err)
	suite.Require().Greater(len(data), 4)
	suite.Equal("%PDF", string(data[:4]))
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportPDF_EmptyPeriod() {
	suite.mockReader.On("ListExpenses", suite.ctx).Return([]domain.Expense{}, nil).Once()

	data, err := suite.service.ExportPDF(suite.ctx, domain.PeriodYear)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExportEmpty)
	suite.Nil(data)
	suite.mockReader.AssertExpectations(suite.T())
}
