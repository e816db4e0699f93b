package client

import "sync"

type cacheEntry struct {
	data  []byte
	fresh bool
}

// Cache guarda respostas de GET por chave (o caminho da requisição).
// Invalidate não descarta a entrada, apenas a marca como velha; a próxima
// leitura da chave volta à rede e regrava o valor.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// NewCache cria um cache vazio.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Get devolve o valor da chave somente se ainda estiver fresco.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.fresh {
		return nil, false
	}
	return e.data, true
}

// Set grava o valor da chave e a marca como fresca.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{data: data, fresh: true}
}

// Invalidate marca como velha cada chave informada e tudo que estiver
// abaixo dela (ex.: "/api/itens" também apanha "/api/itens/<id>").
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		for k, e := range c.entries {
			if k == key || hasPathPrefix(k, key) {
				e.fresh = false
			}
		}
	}
}

func hasPathPrefix(k, prefix string) bool {
	return len(k) > len(prefix) && k[:len(prefix)] == prefix &&
		(k[len(prefix)] == '/' || k[len(prefix)] == '?')
}
