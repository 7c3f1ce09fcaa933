package message

import "time"

const TimeFormatString = "2006-01-02 15:04:05"

// TimeStamp is a UTC wall-clock time with second precision.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(TimeFormatString))
}

func (ts TimeStamp) Time() time.Time {
	parsedTime, _ := time.ParseInLocation(TimeFormatString, string(ts), time.UTC)
	return parsedTime
}

// Expired reports whether ts is older than ttl at now. A stamp that does not
// parse is always expired.
func (ts TimeStamp) Expired(now time.Time, ttl time.Duration) bool {
	t := ts.Time()
	if t.IsZero() {
		return true
	}
	return now.Sub(t) > ttl
}
