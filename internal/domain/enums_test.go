package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority_AcceptsAnyCase(t *testing.T) {
	for _, in := range []string{"urgent", "URGENT", " Urgent "} {
		p, err := ParsePriority(in)
		require.NoError(t, err, in)
		assert.Equal(t, PriorityUrgent, p)
	}
}

func TestParsePriority_RejectsUnknown(t *testing.T) {
	_, err := ParsePriority("critical")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseStatus_AcceptsLabels(t *testing.T) {
	cases := map[string]Status{
		"To Do":     StatusTodo,
		"to-do":     StatusTodo,
		"In Review": StatusReview,
		"review":    StatusReview,
		"DONE":      StatusDone,
		"backlog":   StatusBacklog,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	_, err := ParseStatus("paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Evening")
	require.NoError(t, err)
	assert.Equal(t, PeriodEvening, p)

	_, err = ParsePeriod("night")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestEnumLists_AreValidAndLabelled(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.Valid())
		assert.NotEqual(t, string(p), p.Label())
		assert.NotEqual(t, "?", p.Icon())
	}
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
		assert.NotEqual(t, string(s), s.Label())
	}
	for _, p := range AllPeriods() {
		assert.True(t, p.Valid())
		assert.NotEqual(t, "?", p.Icon())
	}
	assert.Len(t, AllStatuses(), 6)
	assert.Len(t, AllPriorities(), 4)
	assert.Len(t, AllPeriods(), 3)
}

func TestStatus_NextPrev(t *testing.T) {
	assert.Equal(t, StatusTodo, StatusBacklog.Next())
	assert.Equal(t, StatusDone, StatusDone.Next(), "last column stays put")
	assert.Equal(t, StatusBacklog, StatusBacklog.Prev(), "first column stays put")
	assert.Equal(t, StatusDoing, StatusReview.Prev())
}

func TestProjectStatus_Toggled(t *testing.T) {
	assert.Equal(t, ProjectPaused, ProjectActive.Toggled())
	assert.Equal(t, ProjectActive, ProjectPaused.Toggled())
}
