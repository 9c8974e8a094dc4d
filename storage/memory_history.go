package storage

import (
	"sort"
	"sync"
)

type MemoryHistory struct {
	data map[string][]string
	mu   sync.RWMutex
}

func NewMemoryHistory() History {
	return &MemoryHistory{
		data: make(map[string][]string),
	}
}

func (h *MemoryHistory) Append(key, msg string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.data[key] = append(h.data[key], msg)
	return nil
}

func (h *MemoryHistory) Messages(key string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msgs, ok := h.data[key]
	if !ok {
		return nil, keyNotFound(key)
	}

	out := make([]string, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (h *MemoryHistory) Has(key string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.data[key]
	return ok
}

func (h *MemoryHistory) Keys() ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := make([]string, 0, len(h.data))
	for key := range h.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (h *MemoryHistory) Close() error {
	return nil
}
