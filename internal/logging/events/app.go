package events

import "github.com/atomicstack/smm-uncleared/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) SwitchGame(game string) {
	logging.Trace("app.switch-game", map[string]interface{}{"game": game})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
