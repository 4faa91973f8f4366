// Package ui contains the Bubble Tea program that browses random levels.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, picker input, rendering and the asynchronous commands.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (navigation for key presses, commands.go for
//     fetch, clipboard and mark-cleared results).
//   - Fetches run as tea.Cmd values issued through the internal/ui/command
//     bus. Their results come back as levelLoadedMsg and are committed only
//     if the query coordinator still considers their key current.
//
// State ownership:
//   - Each game owns a feature: its selectors, staged and applied filters,
//     query token, coordinator, mark-cleared mutation and copy popover.
//     Selector changes are persisted through internal/state as they happen.
//   - The option picker reuses internal/ui/state.Level for fuzzy filtering
//     and viewport handling.
package ui
