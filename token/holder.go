package token

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Holder keeps an in-memory copy of the credential and writes every mutation
// through to all backing stores before returning. The in-memory copy and the
// stores therefore never diverge for longer than a failed write, and a failed
// read degrades to "no credential" instead of an error.
type Holder struct {
	mu     sync.Mutex
	loaded bool
	value  string
	stores []Store
}

// NewHolder creates a Holder backed by the given stores. The first store is
// the load source; all stores receive writes.
func NewHolder(stores ...Store) *Holder {
	return &Holder{stores: stores}
}

// Get returns the current credential, or "" when none is set. The first call
// lazily loads from the backing stores; a store failure counts as absent.
func (h *Holder) Get() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded {
		h.value = h.load()
		h.loaded = true
	}
	return h.value
}

// Set replaces the credential in memory and in every backing store. An empty
// value clears. Store failures are logged and otherwise ignored; the
// in-memory copy always reflects the requested value.
func (h *Holder) Set(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.value = value
	h.loaded = true

	for _, s := range h.stores {
		var err error
		if value == "" {
			err = s.Clear()
		} else {
			err = s.Save(value)
		}
		if err != nil {
			log.Warn().Err(err).Msg("token store write failed")
		}
	}
}

func (h *Holder) load() string {
	for _, s := range h.stores {
		value, err := s.Load()
		if err != nil {
			log.Warn().Err(err).Msg("token store read failed")
			continue
		}
		if value != "" {
			return value
		}
	}
	return ""
}
