package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToWireTimestamp_SeedInstant(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	got := ToWireTimestamp(ts)

	assert.Equal(t, WireTimestamp{Seconds: 1705314600, Nanoseconds: 0}, got)
}

func TestToWireTimestamp_Laws(t *testing.T) {
	cases := []time.Time{
		time.Unix(0, 0),
		time.Unix(1705314600, 123*int64(time.Millisecond)),
		time.Unix(1705314600, 999_999_999), // sub-millisecond digits are dropped
		time.Date(1969, 12, 31, 23, 59, 58, 500_000_000, time.UTC),
		time.Date(2099, 6, 30, 12, 0, 0, 1_000_000, time.FixedZone("PET", -5*3600)),
	}

	for _, tc := range cases {
		ms := tc.UnixMilli()
		got := ToWireTimestamp(tc)

		wantSec := ms / 1000
		if ms%1000 < 0 {
			wantSec--
		}
		wantRem := ms - wantSec*1000

		assert.Equal(t, wantSec, got.Seconds, "seconds for %v", tc)
		assert.Equal(t, wantRem*1_000_000, got.Nanoseconds, "nanoseconds for %v", tc)
		assert.GreaterOrEqual(t, got.Nanoseconds, int64(0))
		assert.Less(t, got.Nanoseconds, int64(time.Second))
	}
}

func TestToWireTimestamp_BeforeEpochFloors(t *testing.T) {
	got := ToWireTimestamp(time.UnixMilli(-1500))

	assert.Equal(t, int64(-2), got.Seconds)
	assert.Equal(t, int64(500_000_000), got.Nanoseconds)
}

func TestWireTimestamp_Time(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 250_000_000, time.UTC)

	assert.True(t, ToWireTimestamp(ts).Time().Equal(ts))
}
