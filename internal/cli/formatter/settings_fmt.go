package formatter

import (
	"fmt"
	"strings"

	"github.com/leten02/TimeGrid/internal/domain"
)

// FormatSettings renders the planner settings in a bordered box.
func FormatSettings(s *domain.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("week starts:"), Bold(s.WeekStartDay.String()))
	fmt.Fprintf(&b, "%s %s", Dim("grid:       "), Bold(fmt.Sprintf("%02d:00-%02d:00", s.GridStartHour, s.GridEndHour)))
	if !s.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "\n%s %s", Dim("updated:    "), s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return RenderBox("Settings", b.String())
}
