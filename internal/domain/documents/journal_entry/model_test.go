package journal_entry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/types"
)

func TestIsBalanced(t *testing.T) {
	je := NewJournalEntry("storage revenue accrual")
	je.AddDebit("1200", types.MustMoney("125.00"), "")
	je.AddCredit("4000", types.MustMoney("125.00"), "")

	assert.True(t, je.IsBalanced())
	assert.NoError(t, je.Validate(context.Background()))
}

func TestValidate_Unbalanced(t *testing.T) {
	je := NewJournalEntry("broken entry")
	je.AddDebit("1200", types.MustMoney("100.00"), "")
	je.AddCredit("4000", types.MustMoney("99.99"), "")

	err := je.Validate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnbalancedEntry, appErr.Code)
}

func TestValidate_LineRules(t *testing.T) {
	ctx := context.Background()

	t.Run("both sides on one line", func(t *testing.T) {
		je := NewJournalEntry("x")
		je.addLine(Line{AccountCode: "1200", Debit: types.MustMoney("1.00"), Credit: types.MustMoney("1.00")})
		assert.Error(t, je.Validate(ctx))
	})

	t.Run("empty line", func(t *testing.T) {
		je := NewJournalEntry("x")
		je.addLine(Line{AccountCode: "1200", Debit: types.ZeroMoney(), Credit: types.ZeroMoney()})
		assert.Error(t, je.Validate(ctx))
	})

	t.Run("missing account", func(t *testing.T) {
		je := NewJournalEntry("x")
		je.AddDebit("", types.MustMoney("1.00"), "")
		assert.Error(t, je.Validate(ctx))
	})
}

func TestGenerateMovements(t *testing.T) {
	je := NewJournalEntry("monthly accrual")
	je.AddDebit("1200", types.MustMoney("50.00"), "receivable")
	je.AddCredit("4000", types.MustMoney("50.00"), "revenue")

	set, err := je.GenerateMovements(context.Background())
	require.NoError(t, err)

	require.Len(t, set.General, 2)
	assert.Empty(t, set.Stock)

	assert.Equal(t, "1200", set.General[0].AccountCode)
	assert.Equal(t, "50.00", set.General[0].Debit.StringFixed(2))
	assert.Equal(t, "4000", set.General[1].AccountCode)
	assert.Equal(t, "50.00", set.General[1].Credit.StringFixed(2))
}
