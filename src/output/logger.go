package output

import (
	"fmt"
	"io"
	"os"
)

// Logger is a line-oriented console logger. Each call emits one line
// immediately; there is nothing to flush.
type Logger interface {
	Info(msg string)
	Debug(msg string)
}

// GroupLogger is a Logger that can also fold a block of lines into a
// collapsible group in the CI log viewer.
type GroupLogger interface {
	Logger
	StartGroup(name string)
	EndGroup()
}

// ActionsLogger writes plain lines in the format the CI log viewers expect.
// Debug lines become ::debug:: workflow commands under GitHub Actions (the
// runner hides them unless step debugging is on) and are printed with a
// "debug:" prefix elsewhere only when Verbose is set.
type ActionsLogger struct {
	Writer  io.Writer
	Verbose bool

	group string
}

// NewActionsLogger creates a logger writing to stdout.
func NewActionsLogger(verbose bool) *ActionsLogger {
	return &ActionsLogger{Writer: os.Stdout, Verbose: verbose}
}

func (l *ActionsLogger) Info(msg string) {
	fmt.Fprintln(l.Writer, msg)
}

func (l *ActionsLogger) Debug(msg string) {
	switch {
	case IsGitHubActions():
		fmt.Fprintf(l.Writer, "::debug::%s\n", msg)
	case l.Verbose:
		fmt.Fprintf(l.Writer, "%s\n", Dimmed("debug: "+msg, UseColor()))
	}
}

// StartGroup opens a collapsible group. Groups do not nest; starting a new
// one closes the previous.
func (l *ActionsLogger) StartGroup(name string) {
	if l.group != "" {
		l.EndGroup()
	}
	l.group = sectionID(name)
	GroupStart(l.Writer, l.group, name)
}

func (l *ActionsLogger) EndGroup() {
	if l.group == "" {
		return
	}
	GroupEnd(l.Writer, l.group)
	l.group = ""
}

// sectionID turns a group title into a GitLab-safe section identifier.
func sectionID(name string) string {
	id := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			id = append(id, c)
		case c >= 'A' && c <= 'Z':
			id = append(id, c+('a'-'A'))
		default:
			if len(id) > 0 && id[len(id)-1] != '_' {
				id = append(id, '_')
			}
		}
	}
	if len(id) == 0 {
		return "group"
	}
	return string(id)
}
