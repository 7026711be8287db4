package utils

import "time"

// Vietnam time location (ICT, +07:00). Most of the user base plans trips in
// VN local time, so API date strings are rendered in that zone.
var vnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsVN converts an epoch value in seconds to VN time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsVN(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(vnLoc)
}

func FormatRFC3339VN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format(time.RFC3339)
}
