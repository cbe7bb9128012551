package draw

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/cwhitfield/giveabot/internal/draw Picker

// Picker selects winners from a pool of entrant IDs
type Picker interface {
	// Pick draws up to k distinct IDs uniformly at random from the pool
	Pick(pool []string, k int) []string
}

// RandomPicker implements Picker with a seedable random source
type RandomPicker struct {
	random *rand.Rand
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random picker
func New(cfg *Config) *RandomPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomPicker{
		random: random,
	}
}

// Pick draws min(k, len(pool)) distinct IDs uniformly at random without
// replacement, so every possible subset of that size is equally likely. The
// input slice is not modified. An empty pool or non-positive k yields an empty
// result.
func (p *RandomPicker) Pick(pool []string, k int) []string {
	if k <= 0 || len(pool) == 0 {
		return []string{}
	}

	if k > len(pool) {
		k = len(pool)
	}

	// Partial Fisher-Yates: after i swaps, the first i positions hold a
	// uniform random i-subset.
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	for i := 0; i < k; i++ {
		j := i + p.random.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:k]
}
