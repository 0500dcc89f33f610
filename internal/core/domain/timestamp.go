package domain

import "time"

// WireTimestamp is the {seconds, nanoseconds} pair the document store uses
// for points in time.
type WireTimestamp struct {
	Seconds     int64 `json:"_seconds" bson:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds" bson:"_nanoseconds"`
}

// ToWireTimestamp converts t at millisecond precision. Seconds is the floor of
// the epoch milliseconds divided by 1000 and Nanoseconds the remainder scaled
// to nanoseconds, so Nanoseconds is never negative.
func ToWireTimestamp(t time.Time) WireTimestamp {
	ms := t.UnixMilli()
	sec, rem := ms/1000, ms%1000
	if rem < 0 {
		sec--
		rem += 1000
	}
	return WireTimestamp{Seconds: sec, Nanoseconds: rem * int64(time.Millisecond)}
}

// Time returns the instant as a UTC time.Time.
func (w WireTimestamp) Time() time.Time {
	return time.Unix(w.Seconds, w.Nanoseconds).UTC()
}
