// file: internals/features/finance/budgets/model/budget_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyExpense(t *testing.T) {
	budget := SchoolFinance{
		SchoolFinanceBudgetAmount:    100_000_000,
		SchoolFinanceUsedAmount:      0,
		SchoolFinanceRemainingAmount: 100_000_000,
	}

	require.NoError(t, budget.ApplyExpense(30_000_000))
	assert.Equal(t, int64(30_000_000), budget.SchoolFinanceUsedAmount)
	assert.Equal(t, int64(70_000_000), budget.SchoolFinanceRemainingAmount)

	// melebihi sisa: ditolak tanpa mengubah apa pun
	err := budget.ApplyExpense(80_000_000)
	require.ErrorIs(t, err, ErrInsufficientBudget)
	assert.Equal(t, int64(30_000_000), budget.SchoolFinanceUsedAmount)
	assert.Equal(t, int64(70_000_000), budget.SchoolFinanceRemainingAmount)

	// tepat sebesar sisa: boleh
	require.NoError(t, budget.ApplyExpense(70_000_000))
	assert.Equal(t, int64(0), budget.SchoolFinanceRemainingAmount)
}

func TestApplyIncome(t *testing.T) {
	budget := SchoolFinance{
		SchoolFinanceBudgetAmount:    50_000_000,
		SchoolFinanceUsedAmount:      20_000_000,
		SchoolFinanceRemainingAmount: 30_000_000,
	}

	budget.ApplyIncome(10_000_000)
	assert.Equal(t, int64(60_000_000), budget.SchoolFinanceBudgetAmount)
	assert.Equal(t, int64(40_000_000), budget.SchoolFinanceRemainingAmount)

	// invariant remaining = budget - used
	assert.Equal(t,
		budget.SchoolFinanceBudgetAmount-budget.SchoolFinanceUsedAmount,
		budget.SchoolFinanceRemainingAmount)
}
