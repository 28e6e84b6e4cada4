package components

import (
	"fmt"
	"strings"

	"github.com/colonyops/echotable/internal/core/styles"
)

// Milestones is the number of circles a progress indicator draws.
const Milestones = 5

const (
	circleDone    = "●"
	circlePartial = "◐"
	circlePending = "○"
)

// ProgressCircles renders a milestone-circle progress indicator followed by
// the percentage. Each circle is worth 100/Milestones percent; a started but
// unfinished milestone draws as a half circle.
func ProgressCircles(percent int) string {
	percent = min(max(percent, 0), 100)

	step := 100 / Milestones
	done := percent / step
	partial := done < Milestones && percent%step != 0

	var b strings.Builder
	b.WriteString(styles.ProgressDone.Render(strings.Repeat(circleDone, done)))
	pending := Milestones - done
	if partial {
		b.WriteString(styles.ProgressDone.Render(circlePartial))
		pending--
	}
	b.WriteString(styles.ProgressPending.Render(strings.Repeat(circlePending, pending)))
	b.WriteString(styles.ProgressLabel.Render(fmt.Sprintf(" %3d%%", percent)))
	return b.String()
}
