package events

import "github.com/atomicstack/smm-uncleared/internal/logging"

type QueryTracer struct{}

type MutationTracer struct{}

type ClipboardTracer struct{}

var (
	Query     = QueryTracer{}
	Mutation  = MutationTracer{}
	Clipboard = ClipboardTracer{}
)

func (QueryTracer) Request(key string, cached bool) {
	logging.Trace("query.request", map[string]interface{}{"key": key, "cached": cached})
}

func (QueryTracer) Fetch(key string, shared bool) {
	logging.Trace("query.fetch", map[string]interface{}{"key": key, "shared": shared})
}

func (QueryTracer) Resolve(key, status string, code int) {
	logging.Trace("query.resolve", map[string]interface{}{"key": key, "status": status, "code": code})
}

func (QueryTracer) Stale(key, current string) {
	logging.Trace("query.stale", map[string]interface{}{"key": key, "current": current})
}

func (MutationTracer) Start(levelID string) {
	logging.Trace("mutation.start", map[string]interface{}{"level": levelID})
}

func (MutationTracer) Finish(levelID, state string) {
	logging.Trace("mutation.finish", map[string]interface{}{"level": levelID, "state": state})
}

func (MutationTracer) Ignored(levelID, reason string) {
	logging.Trace("mutation.ignored", map[string]interface{}{"level": levelID, "reason": reason})
}

func (ClipboardTracer) Copy(text string, err error) {
	payload := map[string]interface{}{"text": text}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("clipboard.copy", payload)
}

func (ClipboardTracer) Dismiss(seq int, current bool) {
	logging.Trace("clipboard.dismiss", map[string]interface{}{"seq": seq, "current": current})
}
