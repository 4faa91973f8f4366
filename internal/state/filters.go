package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/storage"
)

const namespace = "filters"

// FilterStore persists the staged filter selection of each game.
type FilterStore interface {
	// Load reads every key of the registry. Missing or stale values fall
	// back to the key default. The returned state is always usable, even
	// when err is non-nil.
	Load(ctx context.Context, reg *filter.Registry) (filter.State, error)
	// Save writes present keys and deletes absent ones.
	Save(ctx context.Context, reg *filter.Registry, s filter.State) error
}

type filterStore struct {
	kv storage.KV
}

func NewFilterStore(kv storage.KV) FilterStore {
	return &filterStore{kv: kv}
}

// StorageKey returns the persisted key for a game filter, e.g.
// "filters.smm2.theme".
func StorageKey(game filter.Game, key filter.Key) string {
	return fmt.Sprintf("%s.%s.%s", namespace, game, key)
}

func (s *filterStore) Load(ctx context.Context, reg *filter.Registry) (filter.State, error) {
	stored := make(filter.State)
	var errs []error
	for _, def := range reg.Definitions() {
		value, ok, err := s.kv.Get(ctx, StorageKey(reg.Game, def.Key))
		switch {
		case err != nil:
			errs = append(errs, err)
		case ok && value != "":
			stored[def.Key] = value
		}
	}
	return reg.Sanitize(stored), errors.Join(errs...)
}

func (s *filterStore) Save(ctx context.Context, reg *filter.Registry, st filter.State) error {
	var errs []error
	for _, def := range reg.Definitions() {
		storageKey := StorageKey(reg.Game, def.Key)
		value, ok := st.Get(def.Key)
		if ok && reg.Accepts(def.Key, value) {
			if err := s.kv.Set(ctx, storageKey, value); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := s.kv.Delete(ctx, storageKey); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
