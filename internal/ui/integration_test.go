package ui

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/logging"
	"github.com/atomicstack/smm-uncleared/internal/state"
	"github.com/atomicstack/smm-uncleared/internal/storage"
	"github.com/atomicstack/smm-uncleared/internal/testutil"
)

func TestBrowseAgainstFakeAPI(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	t.Cleanup(func() { logging.SetLogger(nil) })

	fake := testutil.NewFakeAPI(t)
	fake.SetLevel("smm2", http.StatusOK, `{"id":"xyz987wvu","title":"Castle Crawl","uploaded_at":"2023-05-01T10:00:00Z","likes":3,"theme":"castle","tags":["technical"]}`)

	kv, err := storage.NewSQLite(filepath.Join(t.TempDir(), "filters.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	client := api.New(api.Options{Root: fake.URL(), HTTPClient: fake.Client()})
	model, err := NewModel(context.Background(), Options{
		Game:   filter.GameSMM2,
		Client: client,
		Store:  state.NewFilterStore(kv),
	})
	require.NoError(t, err)
	h := NewHarness(model)

	h.Key("down")
	h.Key("down")
	h.Key("right")
	h.Key("right")
	h.Key("right")
	h.Init()

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/smm2/random_level", reqs[0].Path)
	assert.Equal(t, "2023", reqs[0].Query.Get("year"))
	assert.Equal(t, "castle", reqs[0].Query.Get("theme"))
	assert.Empty(t, reqs[0].Query.Get("style"))

	view := h.View()
	assert.Contains(t, view, "Castle Crawl")
	assert.Contains(t, view, "XYZ-987-WVU")
	assert.Contains(t, view, "Technical")

	h.Key("m")
	assert.Equal(t, 1, fake.Count("/smm2/mark_cleared"))
	assert.Contains(t, h.View(), "Done! :)")

	saved, err := state.NewFilterStore(kv).Load(context.Background(), filter.SMM2)
	require.NoError(t, err)
	assert.Equal(t, "castle", saved[filter.KeyTheme])
}

func TestFakeAPINotFoundRendersHint(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	t.Cleanup(func() { logging.SetLogger(nil) })

	fake := testutil.NewFakeAPI(t)
	model, err := NewModel(context.Background(), Options{
		Game:   filter.GameSMM1,
		Client: api.New(api.Options{Root: fake.URL(), HTTPClient: fake.Client()}),
		Store:  state.NewFilterStore(storage.NewMemory()),
	})
	require.NoError(t, err)
	h := NewHarness(model)
	h.Init()

	assert.Equal(t, 1, fake.Count("/smm1/random_level"))
	assert.Contains(t, h.View(), "No level found! Be sure to double-check your filters.")
}

// asyncRunner executes commands on their own goroutines the way a running
// program does, handing their messages back on msgs.
type asyncRunner struct {
	msgs chan tea.Msg
	wg   sync.WaitGroup
}

func newAsyncRunner() *asyncRunner {
	return &asyncRunner{msgs: make(chan tea.Msg, 16)}
}

func (r *asyncRunner) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		switch msg := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			for _, next := range msg {
				r.run(next)
			}
		default:
			r.msgs <- msg
		}
	}()
}

func (r *asyncRunner) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-r.msgs:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a command result")
		return nil
	}
}

func awaitArrival(t *testing.T, fake *testutil.FakeAPI) string {
	t.Helper()
	select {
	case q := <-fake.Arrivals():
		return q
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a random_level request")
		return ""
	}
}

func TestSupersededFetchOverHTTPNeverReplacesNewerLevel(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	t.Cleanup(func() { logging.SetLogger(nil) })

	uploaded := api.Timestamp{Time: time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)}
	fake := testutil.NewFakeAPI(t)
	fake.SetLevelJSON(t, "smm2", api.Level{ID: "aaa111bbb", Title: "Slow First", UploadedAt: uploaded})
	fake.Hold()

	model, err := NewModel(context.Background(), Options{
		Game:   filter.GameSMM2,
		Client: api.New(api.Options{Root: fake.URL(), HTTPClient: fake.Client()}),
		Store:  state.NewFilterStore(storage.NewMemory()),
	})
	require.NoError(t, err)
	runner := newAsyncRunner()
	press := func(k string) {
		_, cmd := model.Update(keyMsg(k))
		runner.run(cmd)
	}

	press("r")
	awaitArrival(t, fake)
	fake.SetLevelJSON(t, "smm2", api.Level{ID: "ccc222ddd", Title: "Fast Second", UploadedAt: uploaded})
	press("r")
	awaitArrival(t, fake)
	assert.Contains(t, model.View(), "Loading")

	fake.Release()
	first, second := runner.next(t), runner.next(t)
	runner.wg.Wait()

	// deliver the older fetch last so it arrives after the newer one
	titleOf := func(msg tea.Msg) string {
		loaded, ok := msg.(levelLoadedMsg)
		require.True(t, ok, "unexpected message %T", msg)
		return loaded.result.Data.Title
	}
	if titleOf(first) == "Slow First" {
		first, second = second, first
	}
	require.Equal(t, "Fast Second", titleOf(first))
	model.Update(first)
	model.Update(second)

	view := model.View()
	assert.Contains(t, view, "Fast Second")
	assert.NotContains(t, view, "Slow First")
	assert.Contains(t, view, "CCC-222-DDD")
	assert.Equal(t, 2, fake.Count("/smm2/random_level"))

	lvl, ok := model.features[filter.GameSMM2].level()
	require.True(t, ok)
	assert.True(t, lvl.UploadedAt.Equal(uploaded.Time), "timestamp survives the JSON round trip")
}
