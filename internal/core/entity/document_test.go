package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/workflow"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	assert.False(t, doc.ID.String() == "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, workflow.StatusDraft, doc.Status)
	assert.False(t, doc.Posted)
	assert.Zero(t, doc.PostedVersion)
	assert.False(t, doc.Date.IsZero())
}

func TestDocument_Validate(t *testing.T) {
	ctx := context.Background()

	doc := NewDocument()
	require.NoError(t, doc.Validate(ctx))

	noDate := NewDocument()
	noDate.Date = time.Time{}
	err := noDate.Validate(ctx)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "date", appErr.Details["field"])

	badStatus := NewDocument()
	badStatus.Status = "shipped"
	assert.Error(t, badStatus.Validate(ctx))
}

func TestDocument_CanModify(t *testing.T) {
	doc := NewDocument()
	assert.NoError(t, doc.CanModify())

	posted := NewDocument()
	posted.Posted = true
	err := posted.CanModify()
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeDocumentPosted, appErr.Code)

	completed := NewDocument()
	completed.Status = workflow.StatusCompleted
	assert.Error(t, completed.CanModify())
}

func TestDocument_TransitionTo(t *testing.T) {
	m := workflow.DocumentFlow("test")

	doc := NewDocument()
	before := doc.UpdatedAt

	require.NoError(t, doc.TransitionTo(m, workflow.StatusPending, "alice"))
	assert.Equal(t, workflow.StatusPending, doc.Status)
	assert.Equal(t, "alice", doc.UpdatedBy)
	assert.True(t, doc.UpdatedAt.After(before) || doc.UpdatedAt.Equal(before))

	// completed is not reachable from pending directly
	err := doc.TransitionTo(m, workflow.StatusCompleted, "alice")
	require.Error(t, err)
	assert.Equal(t, workflow.StatusPending, doc.Status)
}

func TestDocument_PostingFlags(t *testing.T) {
	doc := NewDocument()

	doc.MarkPosted()
	assert.True(t, doc.Posted)
	assert.Equal(t, 1, doc.PostedVersion)

	doc.MarkUnposted()
	assert.False(t, doc.Posted)
	assert.Equal(t, 1, doc.PostedVersion)

	doc.MarkPosted()
	assert.Equal(t, 2, doc.PostedVersion)
}

func TestDocument_IsBackdated(t *testing.T) {
	doc := NewDocument()
	assert.False(t, doc.IsBackdated())

	doc.Date = time.Now().UTC().AddDate(0, 0, -3)
	assert.True(t, doc.IsBackdated())
}
