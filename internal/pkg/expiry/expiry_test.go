package expiry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant_UnixSeconds(t *testing.T) {
	got, ok := ParseInstant("1700000000")
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0), got)
}

func TestParseInstant_UnixFractionalSeconds(t *testing.T) {
	got, ok := ParseInstant("1700000000.5")
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, int64(500*time.Millisecond)), got)
}

func TestParseInstant_RFC3339_Zulu(t *testing.T) {
	got, ok := ParseInstant("2099-01-01T00:00:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseInstant_RFC3339_Offset(t *testing.T) {
	got, ok := ParseInstant("2030-06-15T12:00:00+02:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 6, 15, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseInstant_ZonelessDatetime(t *testing.T) {
	got, ok := ParseInstant("2030-06-15T12:00:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 6, 15, 12, 0, 0, 0, time.Local), got)
}

func TestParseInstant_DateOnly(t *testing.T) {
	got, ok := ParseInstant("2030-06-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local), got)
}

func TestParseInstant_Garbage(t *testing.T) {
	for _, s := range []string{"", "not-a-time", "soon", "2099-99-99T00:00:00Z"} {
		_, ok := ParseInstant(s)
		assert.False(t, ok, "input %q", s)
	}
}

// A numeric string must always be read as Unix seconds, never as a date.
func TestParseInstant_NumericStageWinsFirst(t *testing.T) {
	got, ok := ParseInstant("20300615")
	require.True(t, ok)
	assert.Equal(t, time.Unix(20300615, 0), got)
}

func TestExpired(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		timeToVerify string
		want         bool
	}{
		{fmt.Sprintf("%d", now.Unix()-10), true},
		{fmt.Sprintf("%d", now.Unix()+10), false},
		{fmt.Sprintf("%d", now.Unix()), false}, // strictly after, not at
		{"2099-01-01T00:00:00Z", false},
		{"2001-01-01T00:00:00Z", true},
		{"not-a-time", false}, // unparseable never expires
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Expired(tc.timeToVerify, now), "timeToVerify %q", tc.timeToVerify)
	}
}
