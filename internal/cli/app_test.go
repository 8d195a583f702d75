package cli

import (
	"testing"
	"time"

	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"abc", "0", "-3", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseWhen(t *testing.T) {
	ms, err := parseWhen("2024-03-05 14:30")
	require.NoError(t, err)
	assert.Equal(t, utils.ToMillis(time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)), ms)

	ms, err = parseWhen("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, utils.ToMillis(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)), ms)

	for _, bad := range []string{"yesterday", "2024-13-40", "14:30"} {
		_, err := parseWhen(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseWhen_RoundTripsThroughFmtWhen(t *testing.T) {
	ms, err := parseWhen("2024-03-05 14:30")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 14:30", fmtWhen(ms))
}

func TestParseRange_NothingSupplied(t *testing.T) {
	start, end, err := parseRange("", "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), start)
	assert.InDelta(t, utils.NowMillis(), end, 5000)
}

func TestParseRange_DaysFallback(t *testing.T) {
	start, end, err := parseRange("", "", 7)
	require.NoError(t, err)
	assert.InDelta(t, utils.ToMillis(time.Now().AddDate(0, 0, -7)), start, 5000)
	assert.InDelta(t, utils.NowMillis(), end, 5000)
}

func TestParseRange_BareToDateCoversWholeDay(t *testing.T) {
	start, end, err := parseRange("2024-03-01", "2024-03-05", 0)
	require.NoError(t, err)

	assert.Equal(t, utils.ToMillis(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)), start)
	wantEnd := utils.ToMillis(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)) + 24*60*60*1000 - 1
	assert.Equal(t, wantEnd, end)
}

func TestParseRange_ToWithTimeIsExact(t *testing.T) {
	_, end, err := parseRange("", "2024-03-05 08:15", 0)
	require.NoError(t, err)
	assert.Equal(t, utils.ToMillis(time.Date(2024, 3, 5, 8, 15, 0, 0, time.Local)), end)
}

func TestParseRange_FromOnly(t *testing.T) {
	start, end, err := parseRange("2024-03-01", "", 0)
	require.NoError(t, err)
	assert.Equal(t, utils.ToMillis(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)), start)
	assert.InDelta(t, utils.NowMillis(), end, 5000)
}

func TestParseRange_StartAfterEnd(t *testing.T) {
	_, _, err := parseRange("2024-03-10", "2024-03-01", 0)
	require.Error(t, err)
}

func TestParseRange_BadInput(t *testing.T) {
	_, _, err := parseRange("not-a-date", "", 0)
	require.Error(t, err)

	_, _, err = parseRange("", "not-a-date", 0)
	require.Error(t, err)
}

func TestStrOrDash(t *testing.T) {
	assert.Equal(t, "-", strOrDash(nil))
	empty := ""
	assert.Equal(t, "-", strOrDash(&empty))
	notes := "with breakfast"
	assert.Equal(t, "with breakfast", strOrDash(&notes))
}
