package aes32

import (
	"crypto/cipher"
	"sync"

	"github.com/floatdrop/lru"
)

// CipherCache keeps recently expanded ciphers keyed by their raw key bytes,
// so that callers encrypting many blocks under few keys only expand each key once.
type CipherCache struct {
	engine *Engine

	lock    sync.Mutex
	ciphers *lru.LRU[string, cipher.Block]

	hits, misses uint64
}

func NewCipherCache(e *Engine, size int) *CipherCache {
	if size <= 0 {
		size = 16
	}
	return &CipherCache{
		engine:  e,
		ciphers: lru.New[string, cipher.Block](size),
	}
}

// Get returns the cached cipher for key, expanding it on a miss.
func (c *CipherCache) Get(key []byte) (cipher.Block, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if b := c.ciphers.Get(string(key)); b != nil {
		c.hits++
		return *b, nil
	}

	b, err := c.engine.NewCipher(key)
	if err != nil {
		return nil, err
	}
	c.misses++
	c.ciphers.Set(string(key), b)
	return b, nil
}

func (c *CipherCache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.ciphers.Len()
}

// Stats returns the number of lookups served from the cache and the number of key expansions.
func (c *CipherCache) Stats() (hits, misses uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.hits, c.misses
}
