package events

import "github.com/atomicstack/keyword-editor/internal/logging"

type KeywordTracer struct{}

var Keyword = KeywordTracer{}

func (KeywordTracer) Add(candidates, added, total int) {
	logging.Trace("keyword.add", map[string]interface{}{
		"candidates": candidates,
		"added":      added,
		"total":      total,
	})
}

func (KeywordTracer) Remove(label string, position int, source string) {
	logging.Trace("keyword.remove", map[string]interface{}{
		"label":    label,
		"position": position,
		"source":   source,
	})
}

func (KeywordTracer) Focus(position int) {
	logging.Trace("keyword.focus", map[string]interface{}{"position": position})
}

func (KeywordTracer) Delegate(target string) {
	logging.Trace("keyword.focus.delegate", map[string]interface{}{"target": target})
}

func (KeywordTracer) Expanded(expanded bool) {
	logging.Trace("keyword.expanded", map[string]interface{}{"expanded": expanded})
}
