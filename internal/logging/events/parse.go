package events

import "github.com/atomicstack/keyword-editor/internal/logging"

type ParseTracer struct{}

var Parse = ParseTracer{}

func (ParseTracer) Run(mode, language string, count int) {
	logging.Trace("parse.run", map[string]interface{}{
		"mode":     mode,
		"language": language,
		"count":    count,
	})
}

func (ParseTracer) LanguageFallback(requested, resolved string) {
	logging.Trace("parse.language.fallback", map[string]interface{}{
		"requested": requested,
		"resolved":  resolved,
	})
}
