package caching

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sofmeright/gradle-summary/src/output"
)

// Reporter renders a Listener into the job summary and the console log.
type Reporter interface {
	WriteCachingReport(sink output.Sink, l *Listener)
	LogCachingReport(log output.Logger, l *Listener)
}

// DefaultReporter is the stock Reporter.
type DefaultReporter struct {
	Color bool // ANSI color in the console section
}

// WriteCachingReport appends a collapsed <details> block with entry counts
// and per-entry details.
func (r DefaultReporter) WriteCachingReport(sink output.Sink, l *Listener) {
	if l == nil {
		l = &Listener{}
	}

	var b strings.Builder
	b.WriteString("\n<details>\n")
	fmt.Fprintf(&b, "<summary><h4>Caching for Gradle actions was %s - expand for details</h4></summary>\n", statusText(l))
	b.WriteString("\n" + renderCountTable(l.CacheEntries) + "\n")
	if len(l.CacheEntries) > 0 {
		b.WriteString("\n<h5>Cache Entry Details</h5>\n<pre>\n")
		b.WriteString(htmlEscaper.Replace(renderEntryDetails(l)))
		b.WriteString("</pre>\n")
	}
	b.WriteString("</details>\n")

	sink.AddRaw(b.String())
}

// LogCachingReport writes a framed section with the status, totals and one
// row per entry and, when the logger supports groups, the per-entry details
// folded into a group.
func (r DefaultReporter) LogCachingReport(log output.Logger, l *Listener) {
	if l == nil || len(l.CacheEntries) == 0 {
		log.Debug(fmt.Sprintf("Caching for Gradle actions was %s: no cache entries recorded.", statusText(l)))
		return
	}

	restored, restoredSize := tally(l.CacheEntries, func(e *EntryListener) int64 { return e.RestoredSize })
	saved, savedSize := tally(l.CacheEntries, func(e *EntryListener) int64 { return e.SavedSize })

	sec := output.NewSection(log, "Caching for Gradle actions", r.Color)
	sec.Row("%-10s%s", "status", statusText(l))
	sec.Row("%-10s%d (%s)", "restored", restored, humanize.Bytes(uint64(restoredSize)))
	sec.Row("%-10s%d (%s)", "saved", saved, humanize.Bytes(uint64(savedSize)))
	sec.Separator()
	sec.Row("%s", entryRow("name", "requested", "restored", "saved"))
	for _, e := range l.CacheEntries {
		sec.Row("%s", entryRow(e.EntryName, e.RequestedKey, e.RestoredKey, e.SavedKey))
	}
	sec.Close()

	gl, ok := log.(output.GroupLogger)
	if !ok {
		return
	}
	gl.StartGroup("Cache Entry Details")
	for _, line := range strings.Split(strings.TrimRight(renderEntryDetails(l), "\n"), "\n") {
		gl.Info(line)
	}
	gl.EndGroup()
}

const (
	nameWidth = 16
	keyWidth  = 12
)

// entryRow renders "name | requested | restored | saved" with each cell
// fitted to a fixed display width. Missing keys show as "-".
func entryRow(name, requested, restored, saved string) string {
	return strings.Join([]string{
		output.Cell(name, nameWidth),
		output.Cell(orDash(requested), keyWidth),
		output.Cell(orDash(restored), keyWidth),
		strings.TrimRight(output.Cell(orDash(saved), keyWidth), " "),
	}, " | ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func statusText(l *Listener) string {
	status := l.Status()
	if l != nil && l.CacheStatusReason != "" {
		status += " (" + l.CacheStatusReason + ")"
	}
	return status
}

func renderCountTable(entries []*EntryListener) string {
	restored, restoredSize := tally(entries, func(e *EntryListener) int64 { return e.RestoredSize })
	saved, savedSize := tally(entries, func(e *EntryListener) int64 { return e.SavedSize })

	return fmt.Sprintf(`<table>
    <tr><td></td><th>Count</th><th>Total Size</th></tr>
    <tr><td>Entries Restored</td><td>%d</td><td>%s</td></tr>
    <tr><td>Entries Saved</td><td>%d</td><td>%s</td></tr>
</table>`, restored, humanize.Bytes(uint64(restoredSize)), saved, humanize.Bytes(uint64(savedSize)))
}

// tally counts entries with a non-zero size and sums those sizes.
func tally(entries []*EntryListener, size func(*EntryListener) int64) (int, int64) {
	var count int
	var total int64
	for _, e := range entries {
		if s := size(e); s > 0 {
			count++
			total += s
		}
	}
	return count, total
}

func renderEntryDetails(l *Listener) string {
	var b strings.Builder
	for _, e := range l.CacheEntries {
		fmt.Fprintf(&b, "Entry: %s\n", e.EntryName)
		fmt.Fprintf(&b, "    Requested Key : %s\n", e.RequestedKey)
		if len(e.RequestedRestoreKeys) > 0 {
			fmt.Fprintf(&b, "    Restore Keys  : %s\n", strings.Join(e.RequestedRestoreKeys, ", "))
		}
		fmt.Fprintf(&b, "    Restored  Key : %s\n", e.RestoredKey)
		fmt.Fprintf(&b, "              Size: %s\n", formatSize(e.RestoredSize))
		fmt.Fprintf(&b, "              Time: %s\n", formatTime(e.RestoredTime))
		fmt.Fprintf(&b, "              %s\n", restoredMessage(e, l.CacheWriteOnly))
		fmt.Fprintf(&b, "    Saved     Key : %s\n", e.SavedKey)
		fmt.Fprintf(&b, "              Size: %s\n", formatSize(e.SavedSize))
		fmt.Fprintf(&b, "              Time: %s\n", formatTime(e.SavedTime))
		fmt.Fprintf(&b, "              %s\n", savedMessage(e, l.CacheReadOnly))
		b.WriteString("---\n")
	}
	return b.String()
}

func restoredMessage(e *EntryListener, writeOnly bool) string {
	switch {
	case e.NotRestored != "":
		return "(Entry not restored: " + e.NotRestored + ")"
	case writeOnly:
		return "(Entry not restored: cache is write-only)"
	case e.RequestedKey == "":
		return "(Entry not restored: not requested)"
	case e.RestoredKey == "":
		return "(Entry not restored: no match found)"
	case e.RestoredKey == e.RequestedKey:
		return "(Entry restored: exact match found)"
	default:
		return "(Entry restored: partial match found)"
	}
}

func savedMessage(e *EntryListener, readOnly bool) string {
	switch {
	case e.NotSaved != "":
		return "(Entry not saved: " + e.NotSaved + ")"
	case e.Unchanged != "":
		return "(Entry not saved: " + e.Unchanged + ")"
	case e.SavedKey == "" && readOnly:
		return "(Entry not saved: cache is read-only)"
	case e.SavedKey == "":
		return "(Entry not saved: reason unknown)"
	case e.SavedSize == 0:
		return "(Entry not saved: entry with key already exists)"
	default:
		return "(Entry saved)"
	}
}

func formatSize(bytes int64) string {
	if bytes <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(bytes))
}

func formatTime(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return (time.Duration(ms) * time.Millisecond).String()
}
