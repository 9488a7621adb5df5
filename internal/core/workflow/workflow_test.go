package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
)

func TestDocumentFlow_Transitions(t *testing.T) {
	m := DocumentFlow("test-doc")

	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"draft to pending", StatusDraft, StatusPending, true},
		{"draft to approved", StatusDraft, StatusApproved, true},
		{"draft to cancelled", StatusDraft, StatusCancelled, true},
		{"pending to approved", StatusPending, StatusApproved, true},
		{"approved to in_progress", StatusApproved, StatusInProgress, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"draft to completed", StatusDraft, StatusCompleted, false},
		{"completed to draft", StatusCompleted, StatusDraft, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"pending to in_progress", StatusPending, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, m.Can(tt.from, tt.to))
		})
	}
}

func TestMachine_Transition_Errors(t *testing.T) {
	m := DocumentFlow("delivery-order")

	err := m.Transition(StatusCompleted, StatusDraft)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidTransition, appErr.Code)
	assert.Equal(t, "delivery-order", appErr.Details["entity"])

	err = m.Transition(StatusDraft, Status("bogus"))
	require.Error(t, err)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGuards(t *testing.T) {
	assert.True(t, CanEdit(StatusDraft))
	assert.True(t, CanEdit(StatusPending))
	assert.False(t, CanEdit(StatusApproved))
	assert.False(t, CanEdit(StatusCompleted))

	assert.True(t, CanCancel(StatusInProgress))
	assert.False(t, CanCancel(StatusCancelled))
	assert.False(t, CanCancel(StatusCompleted))

	assert.True(t, CanPost(StatusApproved, false))
	assert.False(t, CanPost(StatusApproved, true), "already posted")
	assert.False(t, CanPost(StatusCancelled, false))
	assert.False(t, CanPost(StatusCompleted, false))
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPending, StatusApproved,
		StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("posted").Valid())
	assert.False(t, Status("").Valid())
}
