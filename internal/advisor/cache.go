package advisor

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"
)

// explanationCache is a bounded, TTL-expiring cache of narration text
// keyed by a hash of the prompt that produced it, adapted from the
// teacher's strategy.StrategyCache down to the single concern this
// package needs: avoid re-billing an identical Gemini call for a setup
// whose trace hasn't changed.
type explanationCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[string]cacheEntry
}

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

func newExplanationCache(ttl time.Duration, maxSize int) *explanationCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 100
	}
	return &explanationCache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached explanation for prompt, evicting it first if
// its TTL has elapsed.
func (c *explanationCache) get(prompt string) (string, bool) {
	key := hashPrompt(prompt)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return entry.text, true
}

// put stores text under prompt's hash, evicting an arbitrary entry first
// if the cache is at capacity (the teacher's cache tracks LRU/LFU/TTL
// eviction policies; this one only ever needs to bound memory, so any
// eviction is fine).
func (c *explanationCache) put(prompt, text string) {
	key := hashPrompt(prompt)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = cacheEntry{text: text, expiresAt: time.Now().Add(c.ttl)}
}

func hashPrompt(prompt string) string {
	sum := md5.Sum([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
