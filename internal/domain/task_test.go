package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTask() *Task {
	return &Task{
		ID:        "t1",
		ProjectID: "p1",
		Title:     "Write report",
		Deadline:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Period:    PeriodMorning,
		Priority:  PriorityImportant,
		Status:    StatusTodo,
	}
}

func TestTaskValidate_OK(t *testing.T) {
	assert.NoError(t, validTask().Validate())
}

func TestTaskValidate_Title(t *testing.T) {
	tk := validTask()
	tk.Title = "   "
	assert.ErrorIs(t, tk.Validate(), ErrInvalidTitle)

	tk.Title = strings.Repeat("a", MaxTitleLen)
	assert.NoError(t, tk.Validate())

	tk.Title = strings.Repeat("a", MaxTitleLen+1)
	assert.ErrorIs(t, tk.Validate(), ErrInvalidTitle)
}

func TestTaskValidate_TitleCountsRunes(t *testing.T) {
	tk := validTask()
	tk.Title = strings.Repeat("é", MaxTitleLen)
	assert.NoError(t, tk.Validate())
}

func TestTaskValidate_Description(t *testing.T) {
	tk := validTask()
	tk.Description = strings.Repeat("x", MaxDescriptionLen+1)
	assert.ErrorIs(t, tk.Validate(), ErrInvalidDescription)
}

func TestTaskValidate_MissingProject(t *testing.T) {
	tk := validTask()
	tk.ProjectID = ""
	assert.ErrorIs(t, tk.Validate(), ErrMissingProject)
}

func TestTaskValidateEnums(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{"missing deadline", func(t *Task) { t.Deadline = time.Time{} }, ErrMissingDeadline},
		{"bad priority", func(t *Task) { t.Priority = "high" }, ErrInvalidPriority},
		{"bad status", func(t *Task) { t.Status = "" }, ErrInvalidStatus},
		{"bad period", func(t *Task) { t.Period = "night" }, ErrInvalidPeriod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := validTask()
			tc.mutate(tk)
			assert.ErrorIs(t, tk.ValidateEnums(), tc.want)
		})
	}
}
