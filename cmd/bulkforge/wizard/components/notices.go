package components

import (
	"strings"

	"github.com/mrsinham/bulkforge/internal/notify"
)

// RenderNotices renders the notice log, errors in red, one notice per line.
func RenderNotices(log *notify.Log) string {
	if log == nil || log.Len() == 0 {
		return ""
	}

	lines := make([]string, 0, log.Len())
	for _, n := range log.Notices() {
		switch n.Level {
		case notify.LevelError:
			lines = append(lines, ErrorStyle.Render("✗ "+n.Text))
		default:
			lines = append(lines, InfoStyle.Render("✓ "+n.Text))
		}
	}
	return strings.Join(lines, "\n")
}
