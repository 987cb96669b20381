package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Entry is one decoded line of the zap JSON log.
type Entry struct {
	Time    string
	Level   zapcore.Level
	Message string
	Fields  map[string]any
	// Raw holds lines that were not zap JSON; they are kept verbatim.
	Raw string
}

// Tail returns the last n entries at or above minLevel from the log at path.
// n <= 0 returns every matching entry. A missing file yields no entries.
func Tail(path string, n int, minLevel zapcore.Level) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var ring []Entry
	if n > 0 {
		ring = make([]Entry, 0, n)
	}
	idx := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry := Parse(scanner.Text())
		if entry.Level < minLevel {
			continue
		}
		if n <= 0 || len(ring) < n {
			ring = append(ring, entry)
			continue
		}
		ring[idx] = entry
		idx = (idx + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if idx == 0 {
		return ring, nil
	}
	// Rotate so the oldest kept entry comes first.
	out := make([]Entry, 0, len(ring))
	out = append(out, ring[idx:]...)
	out = append(out, ring[:idx]...)
	return out, nil
}

// Parse decodes one zap production JSON line. Anything else becomes a Raw
// entry at info level.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	var obj map[string]any
	if !strings.HasPrefix(trimmed, "{") || json.Unmarshal([]byte(trimmed), &obj) != nil {
		return Entry{Level: zapcore.InfoLevel, Raw: line}
	}

	entry := Entry{Fields: map[string]any{}}
	for k, v := range obj {
		switch k {
		case "ts":
			entry.Time = fmt.Sprint(v)
		case "level":
			lvl, err := zapcore.ParseLevel(fmt.Sprint(v))
			if err != nil {
				lvl = zapcore.InfoLevel
			}
			entry.Level = lvl
		case "msg":
			entry.Message = fmt.Sprint(v)
		case "caller", "stacktrace":
		default:
			entry.Fields[k] = v
		}
	}
	return entry
}

// Format renders an entry as a single human-readable line with fields sorted
// by key.
func Format(e Entry) string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(e.Time)
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "%-5s %s", e.Level.CapitalString(), e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}
