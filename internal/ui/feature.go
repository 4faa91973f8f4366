package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/logging/events"
	"github.com/atomicstack/smm-uncleared/internal/query"
	"github.com/atomicstack/smm-uncleared/internal/state"
	uistate "github.com/atomicstack/smm-uncleared/internal/ui/state"
)

// LevelClient is the subset of the API the UI needs.
type LevelClient interface {
	RandomLevel(ctx context.Context, endpoint string, params filter.State) (api.Level, error)
	MarkCleared(ctx context.Context, levelID string) error
}

// feature holds everything one game's screen owns: its filter selectors,
// the staged and applied filter states, the query slot and the actions on
// the presented level. Only the Update goroutine touches it.
type feature struct {
	reg    *filter.Registry
	store  state.FilterStore
	staged filter.State
	active filter.State
	token  query.Token

	selectors []*uistate.Selector
	focus     int

	coord    *query.Coordinator[api.Level]
	mutation query.Mutation
	popover  popover
}

func newFeature(ctx context.Context, reg *filter.Registry, store state.FilterStore, client LevelClient) (*feature, error) {
	staged, err := store.Load(ctx, reg)
	if err != nil {
		events.Filter.PersistError(string(reg.Game), err)
	}
	f := &feature{
		reg:    reg,
		store:  store,
		staged: staged,
	}
	f.coord = query.NewCoordinator(func(ctx context.Context, key query.Key) (api.Level, error) {
		return client.RandomLevel(ctx, key.Endpoint, key.Params)
	})
	for _, def := range reg.Definitions() {
		key := def.Key
		sel, err := uistate.NewSelector(string(key), def.Options, reg.Selected(staged, key), func(value string) {
			f.stage(key, value)
		})
		if err != nil {
			return nil, fmt.Errorf("%s filters: %w", reg.Game, err)
		}
		f.selectors = append(f.selectors, sel)
	}
	f.active = f.staged.Clone()
	events.Filter.Restore(string(reg.Game), stringMap(f.staged))
	return f, nil
}

func (f *feature) game() filter.Game {
	return f.reg.Game
}

// stage records a selector change and persists it straight away.
func (f *feature) stage(key filter.Key, value string) {
	if current, _ := f.staged.Get(key); current == value {
		return
	}
	f.staged = f.staged.With(key, value)
	events.Filter.Stage(string(f.game()), string(key), value)
	if err := f.store.Save(context.Background(), f.reg, f.staged); err != nil {
		events.Filter.PersistError(string(f.game()), err)
	}
}

func (f *feature) focused() *uistate.Selector {
	if f.focus < 0 || f.focus >= len(f.selectors) {
		return nil
	}
	return f.selectors[f.focus]
}

func (f *feature) focusedDefinition() (filter.Definition, bool) {
	sel := f.focused()
	if sel == nil {
		return filter.Definition{}, false
	}
	return f.reg.Definition(filter.Key(sel.ID))
}

func (f *feature) moveFocus(delta int) bool {
	next := min(max(f.focus+delta, 0), len(f.selectors)-1)
	if next == f.focus {
		return false
	}
	f.focus = next
	return true
}

// load applies the staged filters, refreshes the token and requests the
// resulting key. It reports whether a fetch must be started.
func (f *feature) load(now time.Time) (query.Ticket, bool) {
	f.active = f.staged.Clone()
	f.token = query.NewToken(f.token, now)
	f.teardownLevel()
	events.Filter.Apply(string(f.game()), f.reg.Summary(f.active))
	return f.coord.Request(f.key())
}

func (f *feature) key() query.Key {
	return query.Key{
		Endpoint: f.reg.Endpoint,
		Params:   f.reg.Clean(f.active),
		Token:    f.token,
	}
}

// teardownLevel drops per-level UI state: the clear action and the copy
// popover.
func (f *feature) teardownLevel() {
	f.mutation.Reset()
	f.popover.cancel()
}

func (f *feature) requested() bool {
	ticket, _ := f.coord.Current()
	return !ticket.Key.IsZero()
}

func (f *feature) result() query.Result[api.Level] {
	return f.coord.Result()
}

// level returns the presented level, if any.
func (f *feature) level() (api.Level, bool) {
	res := f.result()
	if res.Status != query.StatusOK {
		return api.Level{}, false
	}
	return res.Data, true
}

func (f *feature) supportsMarkCleared() bool {
	return f.game() == filter.GameSMM2
}

func stringMap(s filter.State) map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[string(k)] = v
	}
	return out
}
