package events

import "github.com/atomicstack/smm-uncleared/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(game, key string) {
	logging.Trace("ui.focus", map[string]interface{}{"game": game, "key": key})
}

func (UITracer) PickerOpen(game, key string, options int) {
	logging.Trace("ui.picker.open", map[string]interface{}{"game": game, "key": key, "options": options})
}

func (UITracer) PickerClose(game, key, value string, chosen bool) {
	logging.Trace("ui.picker.close", map[string]interface{}{"game": game, "key": key, "value": value, "chosen": chosen})
}

func (UITracer) PickerQuery(key, query string) {
	logging.Trace("ui.picker.query", map[string]interface{}{"key": key, "query": query})
}

func (UITracer) PickerCursor(key string, cursor int) {
	logging.Trace("ui.picker.cursor", map[string]interface{}{"key": key, "cursor": cursor})
}

func (FilterTracer) Stage(game, key, value string) {
	logging.Trace("filter.stage", map[string]interface{}{"game": game, "key": key, "value": value})
}

func (FilterTracer) Apply(game, summary string) {
	logging.Trace("filter.apply", map[string]interface{}{"game": game, "summary": summary})
}

func (FilterTracer) Restore(game string, values map[string]string) {
	logging.Trace("filter.restore", map[string]interface{}{"game": game, "values": values})
}

func (FilterTracer) PersistError(game string, err error) {
	if err == nil {
		return
	}
	logging.Trace("filter.persist.error", map[string]interface{}{"game": game, "error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
