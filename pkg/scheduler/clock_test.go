package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]int{
		"00:00":    0,
		"09:30":    570,
		"23:59":    1439,
		"14:00:00": 840,
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "9am", "24:00", "12:60", "12"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, in)
	}
}

func TestWindowOverlap(t *testing.T) {
	a := window{start: 540, end: 780} // 09:00-13:00

	assert.True(t, a.overlaps(window{start: 720, end: 960}), "partial overlap")
	assert.True(t, a.overlaps(window{start: 600, end: 720}), "containment")
	assert.True(t, a.overlaps(a), "exact match")
	assert.False(t, a.overlaps(window{start: 780, end: 900}), "adjacent")
	assert.False(t, a.overlaps(window{start: 300, end: 540}), "adjacent before")
}

func TestWindowContains(t *testing.T) {
	avail := window{start: 480, end: 1020} // 08:00-17:00

	assert.True(t, avail.contains(window{start: 540, end: 780}))
	assert.True(t, avail.contains(avail))
	assert.False(t, avail.contains(window{start: 420, end: 600}))
	assert.False(t, avail.contains(window{start: 960, end: 1080}))
}
