package draw

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PickerTestSuite struct {
	suite.Suite
	picker *RandomPicker
}

func (s *PickerTestSuite) SetupTest() {
	// Fixed seed for reproducible tests
	s.picker = New(&Config{Seed: 42})
}

func TestPickerTestSuite(t *testing.T) {
	suite.Run(t, new(PickerTestSuite))
}

func (s *PickerTestSuite) TestPickEmptyPool() {
	s.Empty(s.picker.Pick([]string{}, 3))
	s.Empty(s.picker.Pick(nil, 1))
}

func (s *PickerTestSuite) TestPickNonPositiveCount() {
	s.Empty(s.picker.Pick([]string{"a", "b"}, 0))
	s.Empty(s.picker.Pick([]string{"a", "b"}, -1))
}

func (s *PickerTestSuite) TestPickReturnsDistinctWinners() {
	pool := []string{"u1", "u2", "u3", "u4", "u5"}

	winners := s.picker.Pick(pool, 3)

	s.Len(winners, 3)
	seen := make(map[string]bool)
	for _, w := range winners {
		s.False(seen[w], "winner %s drawn twice", w)
		seen[w] = true
		s.Contains(pool, w)
	}
}

func (s *PickerTestSuite) TestPickAllWhenCountExceedsPool() {
	pool := []string{"u1", "u2", "u3"}

	winners := s.picker.Pick(pool, 10)

	s.Len(winners, 3)
	sorted := append([]string{}, winners...)
	sort.Strings(sorted)
	s.Equal([]string{"u1", "u2", "u3"}, sorted)
}

func (s *PickerTestSuite) TestPickDoesNotModifyPool() {
	pool := []string{"u1", "u2", "u3", "u4"}

	s.picker.Pick(pool, 2)

	s.Equal([]string{"u1", "u2", "u3", "u4"}, pool)
}

// TestPickUniformity draws 2 of 5 entrants many times and checks every
// C(5,2)=10 pair shows up at a roughly equal rate.
func (s *PickerTestSuite) TestPickUniformity() {
	pool := []string{"a", "b", "c", "d", "e"}
	const trials = 20000

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		winners := s.picker.Pick(pool, 2)
		pair := append([]string{}, winners...)
		sort.Strings(pair)
		counts[strings.Join(pair, "+")]++
	}

	s.Len(counts, 10, "every 2-subset should appear")

	// Chi-square goodness of fit against the uniform distribution. With 9
	// degrees of freedom the 99.9th percentile is about 27.9; a correct
	// sampler fails this less than once in a thousand runs.
	expected := float64(trials) / 10.0
	var chiSquare float64
	for _, count := range counts {
		diff := float64(count) - expected
		chiSquare += diff * diff / expected
	}
	s.Less(chiSquare, 27.9, "pair frequencies deviate from uniform: %v", counts)
}
