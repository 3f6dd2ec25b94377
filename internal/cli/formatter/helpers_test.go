package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestRelativeDateFrom_CountsCalendarDays(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2026, 2, 7, 23, 30, 0, 0, loc)

	assert.Equal(t, "Tomorrow", RelativeDateFrom(time.Date(2026, 2, 8, 0, 10, 0, 0, loc), now))
	assert.Equal(t, "Today", RelativeDateFrom(time.Date(2026, 2, 7, 0, 0, 0, 0, loc), now))
	// 01:00 UTC on the 8th is still the 7th in UTC-3.
	assert.Equal(t, "Today", RelativeDateFrom(time.Date(2026, 2, 8, 1, 0, 0, 0, time.UTC), now))
}

func TestDeadlineStyled(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	task := domain.Task{Deadline: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Status: domain.StatusTodo}

	assert.Equal(t, "Mar 8 (2d ago)", stripANSI(DeadlineStyled(task, now)))
	assert.Equal(t, "--", stripANSI(DeadlineStyled(domain.Task{}, now)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("1234567890abcdef"))
	assert.Equal(t, "abc", TruncID("abc"))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleRed.Render("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderProgress(0.5, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderProgress(-1, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(2, 10)))
}

func TestLabelsCoverEveryEnum(t *testing.T) {
	for _, p := range domain.AllPriorities() {
		assert.Contains(t, stripANSI(PriorityBadge(p)), p.Label())
	}
	for _, s := range domain.AllStatuses() {
		assert.Contains(t, stripANSI(StatusPill(s)), s.Label())
	}
	for _, p := range domain.AllPeriods() {
		assert.Contains(t, stripANSI(PeriodBadge(p)), p.Label())
	}
	assert.Contains(t, stripANSI(ProjectStatusPill(domain.ProjectPaused)), "Paused")
}
