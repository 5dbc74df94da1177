package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrSummaryFileNotSet is returned by JobSummary.Write when no summary file
// path was configured (GITHUB_STEP_SUMMARY unset).
var ErrSummaryFileNotSet = errors.New("job summary file not set")

// Sink is an append-only rich markup buffer. Write publishes everything
// added so far; callers invoke it exactly once, after all content is added.
type Sink interface {
	AddHeading(text string, level int)
	AddRaw(markup string)
	Write(ctx context.Context) error
}

// JobSummary buffers markup in memory and appends it to the GitHub Actions
// step summary file on Write.
type JobSummary struct {
	Path string

	buf strings.Builder
}

// NewJobSummary creates a JobSummary targeting path. Use
// os.Getenv("GITHUB_STEP_SUMMARY") for the runner-provided file.
func NewJobSummary(path string) *JobSummary {
	return &JobSummary{Path: path}
}

// AddHeading appends an <hN> element followed by a newline. Levels outside
// 1..6 fall back to h1.
func (s *JobSummary) AddHeading(text string, level int) {
	if level < 1 || level > 6 {
		level = 1
	}
	fmt.Fprintf(&s.buf, "<h%d>%s</h%d>\n", level, text, level)
}

// AddRaw appends markup verbatim.
func (s *JobSummary) AddRaw(markup string) {
	s.buf.WriteString(markup)
}

// String returns the buffered, not yet written markup.
func (s *JobSummary) String() string {
	return s.buf.String()
}

// Write appends the buffer to the summary file and empties the buffer.
// On failure the buffer is kept so nothing partial is lost.
func (s *JobSummary) Write(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Path == "" {
		return ErrSummaryFileNotSet
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening job summary: %w", err)
	}
	if _, err := f.WriteString(s.buf.String()); err != nil {
		f.Close()
		return fmt.Errorf("writing job summary: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing job summary: %w", err)
	}

	s.buf.Reset()
	return nil
}
