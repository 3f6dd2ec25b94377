package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/board"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// ProgressSummary renders a project's completion bar and counts.
func ProgressSummary(p board.Progress, width int) string {
	if p.Total == 0 {
		return Dim("no tasks yet")
	}
	counts := fmt.Sprintf("%d/%d done, %d doing, %d pending", p.Done, p.Total, p.Doing, p.Pending)
	return RenderProgress(p.Percent/100, width) + "  " + Dim(counts)
}
