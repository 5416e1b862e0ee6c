package util

import "time"

// HistoryTimeFormat is the layout for human-readable price history rows.
const HistoryTimeFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders t in UTC using HistoryTimeFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(HistoryTimeFormat)
}
