package seismic

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber_StringAndNumberAgree(t *testing.T) {
	for _, pair := range [][2]string{
		{`"5.3"`, `5.3`},
		{`"3"`, `3`},
		{`"-0.75"`, `-0.75`},
		{`"53.310"`, `53.310`},
		{`" 6.56 "`, `6.56`},
	} {
		fromString, err := ParseNumber(json.RawMessage(pair[0]))
		require.NoError(t, err, pair[0])
		fromNumber, err := ParseNumber(json.RawMessage(pair[1]))
		require.NoError(t, err, pair[1])
		assert.Equal(t, fromNumber, fromString, pair[0])
	}
}

func TestParseNumber_Rejects(t *testing.T) {
	for _, raw := range []string{``, `null`, `"abc"`, `""`, `"NaN"`, `"Inf"`, `"1e400"`, `true`, `[1]`, `{"v":1}`, `"5.3`} {
		_, err := ParseNumber(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrInvalidNumber, raw)
	}
}

func TestParseTimestamp_Valid(t *testing.T) {
	ts := ParseTimestamp("2023-05-03 07:31:24")
	require.True(t, ts.Valid())
	assert.Equal(t, time.Date(2023, 5, 3, 7, 31, 24, 0, time.UTC), ts.Time())
	assert.Equal(t, "2023-05-03 07:31:24", ts.Original())
}

func TestParseTimestamp_InvalidFallsBackToMinimum(t *testing.T) {
	for _, s := range []string{"", "2023-05-03", "2023-13-03 07:31:24", "2023-05-03T07:31:24", "gisteren 12:00:00"} {
		ts := ParseTimestamp(s)
		assert.False(t, ts.Valid(), s)
		assert.Equal(t, MinTimestamp, ts.Time(), s)
		assert.Equal(t, s, ts.Original())
	}
}

func TestParseTimestamp_GenuinelyOldEventIsValid(t *testing.T) {
	ts := ParseTimestamp("1986-12-26 01:23:45")
	assert.True(t, ts.Valid())
	assert.True(t, ts.Time().After(MinTimestamp))
}

func TestParseYear(t *testing.T) {
	year, err := ParseYear("2023-05-03")
	require.NoError(t, err)
	assert.Equal(t, 2023, year)

	_, err = ParseYear("May 3rd")
	assert.Error(t, err)

	_, err = ParseYear("")
	assert.Error(t, err)
}
