package events

import "github.com/atomicstack/keyword-editor/internal/logging"

type FocusTracer struct{}

type FormTracer struct{}

type CommandTracer struct{}

var (
	Focus   = FocusTracer{}
	Form    = FormTracer{}
	Command = CommandTracer{}
)

func (FocusTracer) Move(from, to string) {
	logging.Trace("focus.move", map[string]interface{}{"from": from, "to": to})
}

func (FormTracer) Lookup(path string, found bool) {
	logging.Trace("form.lookup", map[string]interface{}{"path": path, "found": found})
}

func (FormTracer) Notice(message string) {
	logging.Trace("form.notice", map[string]interface{}{"message": message})
}

func (FormTracer) Sync(field, value string) {
	logging.Trace("form.sync", map[string]interface{}{"field": field, "value": value})
}

func (CommandTracer) Queue(id, mode string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "mode": mode})
}

func (CommandTracer) Skip(id, reason string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "reason": reason})
}

func (CommandTracer) Result(id string, count int) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "count": count})
}
