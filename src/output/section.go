package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const sectionWidth = 61 // inner width between │ and line end

// Section renders a box-drawing framed block through a Logger, one line
// per call.
type Section struct {
	log   Logger
	name  string
	color bool
}

// NewSection creates a section and writes its header.
func NewSection(log Logger, name string, color bool) *Section {
	s := &Section{log: log, name: name, color: color}
	s.writeHeader()
	return s
}

// Row writes a content line inside the section frame.
func (s *Section) Row(format string, args ...any) {
	s.log.Info("    │ " + fmt.Sprintf(format, args...))
}

// Separator writes a mid-section divider.
func (s *Section) Separator() {
	s.log.Info("    ├" + strings.Repeat("─", sectionWidth))
}

// Close writes the section footer.
func (s *Section) Close() {
	s.log.Info("    └" + strings.Repeat("─", sectionWidth))
}

// writeHeader renders: ── Name ─────────────────────────
func (s *Section) writeHeader() {
	label := fmt.Sprintf("── %s ", s.name)

	fill := sectionWidth + 2 - runewidth.StringWidth(label)
	if fill < 1 {
		fill = 1
	}

	line := "    " + label + strings.Repeat("─", fill)
	if s.color {
		// dim cyan for header
		line = "    \033[2;36m" + label + strings.Repeat("─", fill) + "\033[0m"
	}
	s.log.Info(line)
}

// Cell fits text into exactly width terminal columns: truncated with an
// ellipsis when too wide, right-padded with spaces otherwise.
func Cell(text string, width int) string {
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillRight(text, width)
}

// Dimmed returns dimmed text if color is enabled.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return "\033[90m" + text + "\033[0m"
}
