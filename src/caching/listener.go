// Package caching renders the cache activity of the Gradle actions (which
// entries were restored and saved, and why not) alongside the build table.
package caching

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Listener aggregates cache activity for one CI job. It is recorded by the
// caching step and handed to the report unchanged.
type Listener struct {
	CacheReadOnly     bool             `json:"cacheReadOnly"`
	CacheWriteOnly    bool             `json:"cacheWriteOnly"`
	CacheDisabled     bool             `json:"cacheDisabled"`
	CacheStatusReason string           `json:"cacheStatusReason,omitempty"`
	CacheEntries      []*EntryListener `json:"cacheEntries"`
}

// EntryListener records what happened to a single cache entry.
// Sizes are bytes, times are milliseconds.
type EntryListener struct {
	EntryName            string   `json:"entryName"`
	RequestedKey         string   `json:"requestedKey,omitempty"`
	RequestedRestoreKeys []string `json:"requestedRestoreKeys,omitempty"`

	RestoredKey  string `json:"restoredKey,omitempty"`
	RestoredSize int64  `json:"restoredSize,omitempty"`
	RestoredTime int64  `json:"restoredTime,omitempty"`
	NotRestored  string `json:"notRestored,omitempty"`

	SavedKey  string `json:"savedKey,omitempty"`
	SavedSize int64  `json:"savedSize,omitempty"`
	SavedTime int64  `json:"savedTime,omitempty"`
	NotSaved  string `json:"notSaved,omitempty"`

	Unchanged string `json:"unchanged,omitempty"`
}

// Status summarizes the cache mode for the report heading.
func (l *Listener) Status() string {
	switch {
	case l == nil:
		return "disabled"
	case l.CacheDisabled:
		return "disabled"
	case l.CacheWriteOnly:
		return "write-only"
	case l.CacheReadOnly:
		return "read-only"
	default:
		return "enabled"
	}
}

// LoadListener reads a listener recorded as JSON. A missing file means no
// cache step ran and yields an empty listener.
func LoadListener(path string) (*Listener, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Listener{}, nil
		}
		return nil, fmt.Errorf("reading cache listener: %w", err)
	}

	var l Listener
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing cache listener %s: %w", path, err)
	}
	return &l, nil
}
