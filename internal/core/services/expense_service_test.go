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
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/core/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// MockExpenseRepository is a mock for the expense repository facade.
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
	ctx      context.Context
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

func (suite *ExpenseServiceTestSuite) TestAddExpense_Success() {
	req := dto.CreateExpenseRequest{
		Amount:   "12.50",
		Category: "Food",
	}

	suite.mockRepo.On("SaveExpense", suite.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseID != "" &&
			e.Amount.Equal(decimal.RequireFromString("12.50")) &&
			e.Category == "Food" &&
			!e.Date.IsZero()
	})).Return(nil).Once()

	expense, err := suite.service.AddExpense(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.False(expense.Date.IsZero(), "omitted date should default to now")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestAddExpense_KeepsExplicitDate() {
	date := time.Date(2024, 5, 10, 15, 0, 0, 0, time.Local)
	req := dto.CreateExpenseRequest{
		Amount:   "5",
		Category: "Transport",
		Date:     date,
	}

	suite.mockRepo.On("SaveExpense", suite.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Equal(date)
	})).Return(nil).Once()

	expense, err := suite.service.AddExpense(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(expense.Date.Equal(date))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestAddExpense_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.CreateExpenseRequest
	}{
		{name: "empty category", req: dto.CreateExpenseRequest{Amount: "10", Category: "   "}},
		{name: "unparsable amount", req: dto.CreateExpenseRequest{Amount: "ten", Category: "Food"}},
		{name: "zero amount", req: dto.CreateExpenseRequest{Amount: "0", Category: "Food"}},
		{name: "negative amount", req: dto.CreateExpenseRequest{Amount: "-3.50", Category: "Food"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			expense, err := suite.service.AddExpense(suite.ctx, tt.req)

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Nil(expense)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestAddExpense_StoreFailure() {
	req := dto.CreateExpenseRequest{Amount: "10", Category: "Food"}
	suite.mockRepo.On("SaveExpense", suite.ctx, mock.Anything).Return(errors.New("disk full")).Once()

	expense, err := suite.service.AddExpense(suite.ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Nil(expense)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_StoreFailure() {
	suite.mockRepo.On("FindExpenses", suite.ctx).Return(nil, errors.New("connection refused")).Once()

	expenses, err := suite.service.ListExpenses(suite.ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Nil(expenses)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NotFound() {
	suite.mockRepo.On("FindExpenseByID", suite.ctx, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.GetExpenseByID(suite.ctx, "missing-id")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(expense)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_Success() {
	existing := &domain.Expense{
		ExpenseID: "exp-1",
		Amount:    decimal.RequireFromString("10"),
		Category:  "Food",
		Date:      time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local),
		CreatedAt: time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local),
	}
	req := dto.UpdateExpenseRequest{Amount: "15", Category: "Groceries"}

	suite.mockRepo.On("FindExpenseByID", suite.ctx, "exp-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", suite.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseID == "exp-1" &&
			e.Amount.Equal(decimal.RequireFromString("15")) &&
			e.Category == "Groceries" &&
			e.Date.Equal(existing.Date) &&
			e.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(suite.ctx, "exp-1", req)

	suite.Require().NoError(err)
	suite.Equal("exp-1", updated.ExpenseID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	req := dto.UpdateExpenseRequest{Amount: "15", Category: "Groceries"}
	suite.mockRepo.On("FindExpenseByID", suite.ctx, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateExpense(suite.ctx, "missing-id", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRemoveExpense_UnknownIDIsNoError() {
	suite.mockRepo.On("DeleteExpense", suite.ctx, "missing-id").Return(nil).Once()

	err := suite.service.RemoveExpense(suite.ctx, "missing-id")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestPeriodSummary() {
	now := time.Now()
	records := []domain.Expense{
		{ExpenseID: "a", Amount: decimal.RequireFromString("10"), Category: "Food", Date: now},
		{ExpenseID: "b", Amount: decimal.RequireFromString("5"), Category: "Transport", Date: now.AddDate(-1, 0, 0)},
	}
	suite.mockRepo.On("FindExpenses", suite.ctx).Return(records, nil).Once()

	summary, err := suite.service.PeriodSummary(suite.ctx, domain.PeriodYear)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodYear, summary.Period)
	suite.Equal(1, summary.Count)
	suite.True(summary.Total.Equal(decimal.RequireFromString("10")))
	suite.Len(summary.Breakdown, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestPeriodSummary_InvalidPeriod() {
	summary, err := suite.service.PeriodSummary(suite.ctx, domain.ExportPeriod("decade"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExpenses", mock.Anything)
}
