package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{100, 18, 6},
		{108, 18, 6},
		{109, 18, 7},
		{1, 30, 1},
		{0, 30, 0},
		{-5, 30, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "TotalPages(%d, %d)", tt.count, tt.size)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 6, Clamp(7, 6), "page past the end is clamped")
	assert.Equal(t, 1, Clamp(0, 6))
	assert.Equal(t, 1, Clamp(-3, 6))
	assert.Equal(t, 3, Clamp(3, 6))
	assert.Equal(t, 1, Clamp(4, 0))
}

func TestOffsetNeverNegative(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 18))
	assert.Equal(t, 90, Offset(6, 18))
	assert.Equal(t, 0, Offset(0, 18))
	assert.Equal(t, 0, Offset(-2, 30))
	assert.Equal(t, 60, Offset(3, 30))
}

func TestStateTarget(t *testing.T) {
	s := New(SubjectPageSize)
	s.SetCount(100)
	assert.Equal(t, 6, s.Total)
	assert.False(t, s.Loaded(1), "initial load does not count as a page change")

	p, changed := s.Target(7)
	assert.Equal(t, 6, p)
	assert.True(t, changed)

	p, changed = s.Target(1)
	assert.Equal(t, 1, p)
	assert.False(t, changed, "same page is a no-op")

	_, changed = s.Prev()
	assert.False(t, changed, "prev on page 1 is a no-op")

	p, changed = s.Next()
	assert.Equal(t, 2, p)
	assert.True(t, changed)

	assert.True(t, s.Loaded(2))
	assert.False(t, s.Loaded(2))
	assert.True(t, s.HasPages())
}

func TestSinglePageHasNoPager(t *testing.T) {
	s := New(SearchPageSize)
	s.SetCount(12)
	s.Loaded(1)
	assert.False(t, s.HasPages())
	_, changed := s.Next()
	assert.False(t, changed)
}
