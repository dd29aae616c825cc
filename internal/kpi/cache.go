package kpi

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/goccy/go-json"

	"weekpi/pkg/contracts/domain"
)

// Cache memoizes KPI computations per identical input. Keys are derived
// from the aggregated totals plus the options, not from slice identity, so
// two filtered views with the same content hit the same entry while any
// change of target override or mode misses.
//
// The cache is passed explicitly by callers; there is no package-level
// instance.
type Cache struct {
	mu      sync.Mutex
	entries map[string]domain.KPIResult
	hits    uint64
	misses  uint64
}

// NewCache creates an empty KPI cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]domain.KPIResult)}
}

type cacheKey struct {
	Totals            AggregatedData         `json:"totals"`
	PremiumTarget     *float64               `json:"premium_target"`
	PolicyCountTarget *float64               `json:"policy_count_target"`
	CurrentWeekNumber *int                   `json:"current_week_number"`
	Mode              domain.CalculationMode `json:"mode"`
}

// Key derives the cache key for a record set and options.
func Key(records []domain.InsuranceRecord, opts Options) string {
	k := cacheKey{
		Totals:            Aggregate(records),
		PremiumTarget:     opts.PremiumTarget,
		PolicyCountTarget: opts.PolicyCountTarget,
		CurrentWeekNumber: opts.CurrentWeekNumber,
		Mode:              opts.mode(),
	}
	// Struct field order is fixed, so the encoding is canonical.
	raw, err := json.Marshal(k)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Calculate returns the memoized result for the record set and options,
// computing and storing it on a miss. An empty key (which cannot happen
// for well-typed input) bypasses the cache.
func (c *Cache) Calculate(records []domain.InsuranceRecord, opts Options) domain.KPIResult {
	key := Key(records, opts)
	if key == "" {
		return Calculate(records, opts)
	}

	c.mu.Lock()
	if res, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return res
	}
	c.misses++
	c.mu.Unlock()

	res := Calculate(records, opts)

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
	return res
}

// Invalidate drops every cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]domain.KPIResult)
	c.mu.Unlock()
}

// Stats reports cache effectiveness counters.
func (c *Cache) Stats() (hits, misses uint64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.entries)
}
