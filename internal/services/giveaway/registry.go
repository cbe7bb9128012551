package giveaway

import (
	"sync"

	"github.com/cwhitfield/giveabot/internal/models"
)

// registryEntry wraps one giveaway with its per-key mutex. All mutation of a
// giveaway happens while holding mu, so the Active -> Ended transition has a
// single writer regardless of whether a command handler or the scheduler
// triggers it.
type registryEntry struct {
	mu       sync.Mutex
	giveaway *models.Giveaway
}

// registry is the in-memory map of live giveaways keyed by message ID. It is
// the process's source of truth; the durable store exists to rebuild it after
// a restart. Entries are never removed, so ended giveaways stay queryable for
// listing and reroll.
type registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

func newRegistry() *registry {
	return &registry{
		entries: make(map[string]*registryEntry),
	}
}

// add registers a giveaway under its message ID
func (r *registry) add(g *models.Giveaway) *registryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &registryEntry{giveaway: g}
	r.entries[g.MessageID] = entry
	return entry
}

// get looks up a giveaway's entry by message ID
func (r *registry) get(messageID string) (*registryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[messageID]
	return entry, ok
}

// keys returns a stable snapshot of registered message IDs, safe to iterate
// while other goroutines add giveaways
func (r *registry) keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// snapshotGiveaway copies the giveaway while holding its lock, so callers can
// read the copy without racing mutations
func (e *registryEntry) snapshotGiveaway() *models.Giveaway {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyGiveaway(e.giveaway)
}

func copyGiveaway(g *models.Giveaway) *models.Giveaway {
	entries := make(map[string]struct{}, len(g.Entries))
	for id := range g.Entries {
		entries[id] = struct{}{}
	}

	winners := make([]string, len(g.WinnerIDs))
	copy(winners, g.WinnerIDs)

	copied := *g
	copied.Entries = entries
	copied.WinnerIDs = winners
	return &copied
}
