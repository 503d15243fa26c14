package storage

import (
	"fmt"
	"strings"
	"time"
)

// Keys are ':' separated segments. Ids are free-form and may themselves
// contain ':', so every segment is escaped before joining. '%' is escaped
// too, which keeps the mapping reversible.
var (
	segmentEscaper   = strings.NewReplacer("%", "%25", ":", "%3A")
	segmentUnescaper = strings.NewReplacer("%3A", ":", "%25", "%")
)

func escapeSegment(s string) string {
	return segmentEscaper.Replace(s)
}

func unescapeSegment(s string) string {
	return segmentUnescaper.Replace(s)
}

// key builds "{kind}:{segment}:{segment}..." with escaped segments.
func key(kind string, segments ...string) []byte {
	var b strings.Builder
	b.WriteString(kind)
	for _, s := range segments {
		b.WriteByte(':')
		b.WriteString(escapeSegment(s))
	}
	return []byte(b.String())
}

// prefix is key followed by the separator, so that a scan never spills
// into a sibling whose id merely starts with the same characters.
func prefix(kind string, segments ...string) []byte {
	return append(key(kind, segments...), ':')
}

// lastSegment returns the unescaped trailing segment of a key.
func lastSegment(k []byte) string {
	s := string(k)
	return unescapeSegment(s[strings.LastIndexByte(s, ':')+1:])
}

// sortableTime pads nanoseconds to 19 digits so that lexicographic key
// order is chronological.
func sortableTime(at time.Time) string {
	return fmt.Sprintf("%019d", at.UnixNano())
}
