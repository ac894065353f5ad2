package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token     string
		expected  Color
		expectErr bool
	}{
		{token: "red", expected: Red},
		{token: "GREEN", expected: Green},
		{token: "Blue", expected: Blue},
		{token: "blue,", expectErr: true},
		{token: "purple", expectErr: true},
		{token: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()
			c, err := ParseColor(tc.token)
			if tc.expectErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrUnknownColor))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, c)
		})
	}
}

func TestColor_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "red", Red.String())
	require.Equal(t, "green", Green.String())
	require.Equal(t, "blue", Blue.String())
	require.Equal(t, "Color(7)", Color(7).String())
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		line     string
		expected Record
	}{
		{
			name:     "possible game",
			line:     "Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green",
			expected: Record{ID: 1, MaxRed: 3, MaxGreen: 2, MaxBlue: 6},
		},
		{
			name:     "impossible game",
			line:     "Game 3: 20 red, 8 green, 6 blue; 4 red, 13 green, 5 blue",
			expected: Record{ID: 3, MaxRed: 20, MaxGreen: 13, MaxBlue: 6},
		},
		{
			name:     "green and blue land in their own maxima",
			line:     "Game 7: 9 green; 2 blue",
			expected: Record{ID: 7, MaxGreen: 9, MaxBlue: 2},
		},
		{
			name:     "color names are case-insensitive",
			line:     "Game 4: 5 RED, 6 Green; 7 bLuE",
			expected: Record{ID: 4, MaxRed: 5, MaxGreen: 6, MaxBlue: 7},
		},
		{
			name:     "non-numeric count is zero",
			line:     "Game 5: five red, 3 green",
			expected: Record{ID: 5, MaxGreen: 3},
		},
		{
			name:     "unknown color is skipped",
			line:     "Game 6: 40 purple, 2 red",
			expected: Record{ID: 6, MaxRed: 2},
		},
		{
			name:     "item without color is skipped",
			line:     "Game 8: 4, 1 blue",
			expected: Record{ID: 8, MaxBlue: 1},
		},
		{
			name:     "non-numeric id is zero",
			line:     "Game x: 1 red",
			expected: Record{ID: 0, MaxRed: 1},
		},
		{
			name:     "missing prefix yields zero id",
			line:     "Match 9: 1 red",
			expected: Record{ID: 0, MaxRed: 1},
		},
		{
			name:     "no colon means no draws",
			line:     "Game 10 3 red",
			expected: Record{ID: 10},
		},
		{
			name:     "empty draws",
			line:     "Game 11:",
			expected: Record{ID: 11},
		},
		{
			name:     "overflowing id is zero",
			line:     "Game 99999999999: 1 blue",
			expected: Record{ID: 0, MaxBlue: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseLine(tc.line)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestParseLine_Idempotent(t *testing.T) {
	t.Parallel()
	line := "Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue"
	require.Equal(t, ParseLine(line), ParseLine(line))
}

func TestParseLine_MaximaNeverDecrease(t *testing.T) {
	t.Parallel()
	rec := ParseLine("Game 12: 9 red; 3 red; 0 red, 10 blue; 2 blue")
	require.Equal(t, uint32(9), rec.MaxRed)
	require.Equal(t, uint32(10), rec.MaxBlue)
}

func TestRecord_StringRoundTrip(t *testing.T) {
	t.Parallel()
	rec := Record{ID: 42, MaxRed: 1, MaxGreen: 2, MaxBlue: 3}
	require.Equal(t, "Game 42: 1 red, 2 green, 3 blue", rec.String())
	require.Equal(t, rec, ParseLine(rec.String()))
}

func TestRecord_Valid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rec      Record
		expected bool
	}{
		{name: "zero", rec: Record{}, expected: true},
		{name: "at limits", rec: Record{MaxRed: 12, MaxGreen: 13, MaxBlue: 14}, expected: true},
		{name: "red over", rec: Record{MaxRed: 13}, expected: false},
		{name: "green over", rec: Record{MaxGreen: 14}, expected: false},
		{name: "blue over", rec: Record{MaxBlue: 15}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.rec.Valid())
		})
	}
}

func TestRecord_Power(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(36), Record{MaxRed: 3, MaxGreen: 2, MaxBlue: 6}.Power())
	require.Equal(t, uint64(1560), Record{MaxRed: 20, MaxGreen: 13, MaxBlue: 6}.Power())
	require.Equal(t, uint64(0), Record{MaxRed: 20, MaxBlue: 6}.Power())
	require.Equal(t, uint64(1<<32-1)*uint64(2)*uint64(2), Record{MaxRed: 1<<32 - 1, MaxGreen: 2, MaxBlue: 2}.Power())
}
