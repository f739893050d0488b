package util

import "time"

// isoLayout matches the naive local ISO-8601 form clients already parse.
const isoLayout = "2006-01-02T15:04:05.000000"

// ISOTimestamp formats t as local time with microsecond precision and no zone.
func ISOTimestamp(t time.Time) string {
	return t.Local().Format(isoLayout)
}
