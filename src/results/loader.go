package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DirName is the subdirectory of the runner temp dir holding result files.
const DirName = ".build-results"

// ErrTempDirNotSet is returned when no run-scoped temp dir was configured.
var ErrTempDirNotSet = errors.New("runner temp dir not set")

// ParseError reports a result file that is not valid JSON or whose fields
// have the wrong JSON types.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing build result %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader reads build results from <TempDir>/<Dir>.
type Loader struct {
	TempDir string
	Dir     string // subdirectory name (default: DirName)
}

// NewLoader creates a Loader rooted at the given runner temp dir.
func NewLoader(tempDir string) *Loader {
	return &Loader{TempDir: tempDir, Dir: DirName}
}

// Path returns the resolved results directory.
func (l *Loader) Path() string {
	dir := l.Dir
	if dir == "" {
		dir = DirName
	}
	return filepath.Join(l.TempDir, dir)
}

// Load returns every build result in the results directory, ordered by file
// name. A missing directory means no builds ran and yields an empty slice.
// The first unreadable or malformed file aborts the whole load.
func (l *Loader) Load() ([]BuildResult, error) {
	if l.TempDir == "" {
		return nil, ErrTempDirNotSet
	}

	dir := l.Path()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []BuildResult{}, nil
		}
		return nil, fmt.Errorf("reading results dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]BuildResult, 0, len(names))
	for _, name := range names {
		r, err := l.loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		r.Source = name
		out = append(out, r)
	}
	return out, nil
}

func (l *Loader) loadFile(path string) (BuildResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(filepath.Base(path), data)
}

func parse(name string, data []byte) (BuildResult, error) {
	var r BuildResult
	if err := json.Unmarshal(data, &r); err != nil {
		return BuildResult{}, &ParseError{File: name, Err: err}
	}
	return r, nil
}
