package archive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmeld/snapdiff/errs"
)

func TestCompressIDStability(t *testing.T) {
	captures := []Capture{
		{Timestamp: "20230101000000", Hash: "AAA"},
		{Timestamp: "20230101000001", Hash: "BBB"},
		{Timestamp: "20230101000002", Hash: "AAA"},
	}

	a, err := Compress(captures)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAA", "BBB"}, a.Hashes)

	require.Len(t, a.Captures, 1)
	require.Len(t, a.Captures[0].Months, 1)
	require.Len(t, a.Captures[0].Months[0].Days, 1)
	entries := a.Captures[0].Months[0].Days[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Suffix: "000000", HashID: 0}, entries[0])
	assert.Equal(t, Entry{Suffix: "000001", HashID: 1}, entries[1])
	assert.Equal(t, Entry{Suffix: "000002", HashID: 0}, entries[2])
}

func TestCompressIDsFollowInputOrder(t *testing.T) {
	a, err := Compress([]Capture{
		{Timestamp: "20230101000000", Hash: "BBB"},
		{Timestamp: "20230101000001", Hash: "AAA"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"BBB", "AAA"}, a.Hashes,
		"ids are a first-seen index; reordered input reorders the dictionary")
}

func TestCompressGroupingSortOrder(t *testing.T) {
	captures := []Capture{
		{Timestamp: "20231231235959", Hash: "X"},
		{Timestamp: "20220615120000", Hash: "Y"},
		{Timestamp: "20220103080000", Hash: "X"},
		{Timestamp: "20231201000000", Hash: "Z"},
	}

	a, err := Compress(captures)
	require.NoError(t, err)

	require.Len(t, a.Captures, 2)
	assert.Equal(t, 2022, a.Captures[0].Year)
	assert.Equal(t, 2023, a.Captures[1].Year)

	// Months within 2022 ascend: January before June.
	require.Len(t, a.Captures[0].Months, 2)
	assert.Equal(t, 1, a.Captures[0].Months[0].Month)
	assert.Equal(t, 6, a.Captures[0].Months[1].Month)

	// Days within December 2023 ascend.
	dec := a.Captures[1].Months[0]
	require.Equal(t, 12, dec.Month)
	require.Len(t, dec.Days, 2)
	assert.Equal(t, 1, dec.Days[0].Day)
	assert.Equal(t, 31, dec.Days[1].Day)
}

func TestCompressWithinDayKeepsInputOrder(t *testing.T) {
	// Times deliberately not ascending: per-day entries must keep input
	// order, not be re-sorted by time.
	captures := []Capture{
		{Timestamp: "20230505235959", Hash: "A"},
		{Timestamp: "20230505000001", Hash: "B"},
		{Timestamp: "20230505120000", Hash: "A"},
	}

	a, err := Compress(captures)
	require.NoError(t, err)

	entries := a.Captures[0].Months[0].Days[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "235959", entries[0].Suffix)
	assert.Equal(t, "000001", entries[1].Suffix)
	assert.Equal(t, "120000", entries[2].Suffix)
}

func TestCompressEmptyInput(t *testing.T) {
	a, err := Compress(nil)
	require.NoError(t, err)
	assert.Empty(t, a.Captures)
	assert.Empty(t, a.Hashes)
	assert.Equal(t, 0, a.Len())
}

func TestCompressMalformedTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ts   string
	}{
		{"too short", "2023010100000"},
		{"too long", "202301010000000"},
		{"empty", ""},
		{"non-digit", "2023010100000a"},
		{"letters", "not-a-timestmp"},
		{"month zero", "20230001000000"},
		{"month thirteen", "20231301000000"},
		{"day zero", "20230100000000"},
		{"day thirty-two", "20230132000000"},
		{"hour 24", "20230101240000"},
		{"minute 60", "20230101006000"},
		{"second 60", "20230101000060"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Compress([]Capture{
				{Timestamp: "20230101000000", Hash: "OK"},
				{Timestamp: tt.ts, Hash: "BAD"},
			})
			require.ErrorIs(t, err, errs.ErrMalformedTimestamp)
			assert.Contains(t, err.Error(), "capture 1")
			assert.Nil(t, a, "no partial archive on failure")
		})
	}
}

func TestCompressNonCalendarDatePasses(t *testing.T) {
	// Field-range validation only: February 31 is accepted.
	_, err := Compress([]Capture{{Timestamp: "20230231000000", Hash: "X"}})
	assert.NoError(t, err)
}

func BenchmarkCompress(b *testing.B) {
	captures := make([]Capture, 0, 2000)
	hashes := []string{"aaaa", "bbbb", "cccc"}
	for day := 1; day <= 20; day++ {
		for i := 0; i < 100; i++ {
			captures = append(captures, Capture{
				Timestamp: timestampFor(2023, 6, day, i),
				Hash:      hashes[i%len(hashes)],
			})
		}
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Compress(captures)
	}
}

func timestampFor(year, month, day, secondOfDay int) string {
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d",
		year, month, day, secondOfDay/3600, secondOfDay/60%60, secondOfDay%60)
}
