package logging

import (
	"github.com/rs/zerolog"
)

// ContextHook copies the Scope of an event's context onto the event.
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	s := ScopeFrom(e.GetCtx())
	if s.Command != "" {
		e.Str("command", s.Command)
	}
	if s.Dataset != "" {
		e.Str("dataset", s.Dataset)
	}
}
