package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/format"
	"github.com/atomicstack/smm-uncleared/internal/logging"
	"github.com/atomicstack/smm-uncleared/internal/logging/events"
	"github.com/atomicstack/smm-uncleared/internal/query"
	"github.com/atomicstack/smm-uncleared/internal/ui/command"
)

// levelLoadedMsg carries the outcome of a random level fetch.
type levelLoadedMsg struct {
	game   filter.Game
	ticket query.Ticket
	result query.Result[api.Level]
}

// markClearedMsg carries the outcome of a mark-cleared attempt.
type markClearedMsg struct {
	game    filter.Game
	levelID string
	seq     int
	err     error
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	game    filter.Game
	levelID string
	text    string
	err     error
}

// loadLevel applies f's staged filters and fetches a level for them unless
// the resulting key is already current or cached.
func (m *Model) loadLevel(f *feature) tea.Cmd {
	if f == nil {
		return nil
	}
	m.errMsg = ""
	ticket, fetch := f.load(m.now())
	if !fetch {
		return nil
	}
	cmds := []tea.Cmd{m.fetchLevelCmd(f, ticket)}
	if cmd := m.startSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetchLevelCmd(f *feature, ticket query.Ticket) tea.Cmd {
	game := f.game()
	coord := f.coord
	ctx := m.ctx
	return m.bus.Execute(command.Request{
		ID:    "level:" + string(game),
		Label: ticket.ID(),
		Run: func() tea.Msg {
			return levelLoadedMsg{game: game, ticket: ticket, result: coord.Run(ctx, ticket)}
		},
	})
}

func (m *Model) handleLevelLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(levelLoadedMsg)
	if !ok {
		return nil
	}
	f := m.features[loaded.game]
	if f == nil {
		return nil
	}
	if !f.coord.Resolve(loaded.ticket, loaded.result) {
		return nil
	}
	if loaded.result.Status == query.StatusError && !loaded.result.NotFound() {
		logging.Errorf("random level", loaded.result.Err)
	}
	return nil
}

func (m *Model) markCleared(f *feature) tea.Cmd {
	if f == nil || !f.supportsMarkCleared() {
		return nil
	}
	lvl, ok := f.level()
	if !ok {
		return nil
	}
	seq, ok := f.mutation.Start()
	if !ok {
		events.Mutation.Ignored(lvl.ID, f.mutation.State().String())
		return nil
	}
	events.Mutation.Start(lvl.ID)
	game := f.game()
	client := m.client
	ctx := m.ctx
	return m.bus.Execute(command.Request{
		ID:    "mark-cleared",
		Label: lvl.ID,
		Run: func() tea.Msg {
			err := client.MarkCleared(ctx, lvl.ID)
			return markClearedMsg{game: game, levelID: lvl.ID, seq: seq, err: err}
		},
	})
}

func (m *Model) handleMarkClearedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(markClearedMsg)
	if !ok {
		return nil
	}
	f := m.features[done.game]
	if f == nil {
		return nil
	}
	if lvl, ok := f.level(); !ok || lvl.ID != done.levelID {
		events.Mutation.Ignored(done.levelID, "level changed")
		return nil
	}
	if !f.mutation.Finish(done.seq, done.err) {
		events.Mutation.Ignored(done.levelID, "stale attempt")
		return nil
	}
	if done.err != nil {
		logging.Errorf("mark cleared", done.err)
	}
	events.Mutation.Finish(done.levelID, f.mutation.State().String())
	return nil
}

func (m *Model) copyCourseID(f *feature) tea.Cmd {
	if f == nil {
		return nil
	}
	lvl, ok := f.level()
	if !ok {
		return nil
	}
	text := displayID(f.game(), lvl.ID)
	game := f.game()
	write := m.clipboard
	return m.bus.Execute(command.Request{
		ID:    "clipboard",
		Label: text,
		Run: func() tea.Msg {
			return copiedMsg{game: game, levelID: lvl.ID, text: text, err: write(text)}
		},
	})
}

func (m *Model) handleCopiedMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(copiedMsg)
	if !ok {
		return nil
	}
	events.Clipboard.Copy(copied.text, copied.err)
	if copied.err != nil {
		logging.Errorf("clipboard", copied.err)
		m.errMsg = fmt.Sprintf("clipboard unavailable: %v", copied.err)
		return nil
	}
	f := m.features[copied.game]
	if f == nil || copied.game != m.active {
		return nil
	}
	if lvl, ok := f.level(); !ok || lvl.ID != copied.levelID {
		return nil
	}
	seq := f.popover.show(copiedText)
	return m.after(popoverDuration, popoverDismissMsg{game: string(copied.game), seq: seq})
}

func (m *Model) handlePopoverDismissMsg(msg tea.Msg) tea.Cmd {
	dismiss, ok := msg.(popoverDismissMsg)
	if !ok {
		return nil
	}
	f := m.features[filter.Game(dismiss.game)]
	if f == nil {
		return nil
	}
	events.Clipboard.Dismiss(dismiss.seq, f.popover.dismiss(dismiss.seq))
	return nil
}

func displayID(game filter.Game, id string) string {
	if game == filter.GameSMM1 {
		return format.SMM1LevelID(id)
	}
	return format.SMM2LevelID(id)
}

// errorText is the body shown beneath the error heading.
func errorText(res query.Result[api.Level]) string {
	if res.NotFound() {
		return "No level found! Be sure to double-check your filters."
	}
	return "Something went wrong: " + res.Message()
}
