package catalog

import (
	"sync"

	"github.com/solarcodion/code-challenge/internal/domain"
)

// Cache holds the most recently loaded catalog for serving reads.
type Cache struct {
	mu     sync.RWMutex
	tokens []domain.Token
}

// NewCache creates an empty catalog cache.
func NewCache() *Cache {
	return &Cache{}
}

// Set replaces the cached catalog.
func (c *Cache) Set(tokens []domain.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokens
}

// Tokens returns the cached catalog. The returned slice must not be
// mutated.
func (c *Cache) Tokens() []domain.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}
