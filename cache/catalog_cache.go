package catalog_cache

import (
	"sync"
	"time"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// Stores the approved model catalog. Storefront handlers run the query engine
// over this snapshot; it is treated as immutable per request, so callers must
// never modify the returned slice in place.

type snapshotEntry struct {
	records   []models.AiModel
	fetchedAt time.Time
}

var (
	snapMu   sync.RWMutex
	snapshot *snapshotEntry
)

func GetModels() ([]models.AiModel, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapshot != nil && time.Since(snapshot.fetchedAt) < TTL {
		return snapshot.records, true
	}
	return nil, false
}

func SetModels(records []models.AiModel) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapshot = &snapshotEntry{records: records, fetchedAt: time.Now()}
}

// ── Categories cache ─────────────────────────────────────────────────────────
// Model counts are NOT cached here; they are recomputed from the model
// snapshot on every read.

type categoriesEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	catMu    sync.RWMutex
	catCache *categoriesEntry
)

func GetCategories() ([]models.Category, bool) {
	catMu.RLock()
	defer catMu.RUnlock()
	if catCache != nil && time.Since(catCache.fetchedAt) < TTL {
		return catCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	catMu.Lock()
	defer catMu.Unlock()
	catCache = &categoriesEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog mutation) ─────────────────────

func Invalidate() {
	snapMu.Lock()
	snapshot = nil
	snapMu.Unlock()

	catMu.Lock()
	catCache = nil
	catMu.Unlock()
}
