package logging

import "context"

type scopeKey struct{}

// Scope is the set of log fields a context carries. Empty fields are left
// off log events.
type Scope struct {
	Command string
	Dataset string
}

// ScopeFrom returns the scope stored in ctx, or the zero Scope.
func ScopeFrom(ctx context.Context) Scope {
	if ctx == nil {
		return Scope{}
	}
	s, _ := ctx.Value(scopeKey{}).(Scope)
	return s
}

// WithScope stores s in ctx, replacing any scope already there.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithCommand sets the running CLI command name, keeping other scope fields.
func WithCommand(ctx context.Context, command string) context.Context {
	s := ScopeFrom(ctx)
	s.Command = command
	return WithScope(ctx, s)
}

// WithDataset sets the active dataset title, keeping other scope fields.
func WithDataset(ctx context.Context, dataset string) context.Context {
	s := ScopeFrom(ctx)
	s.Dataset = dataset
	return WithScope(ctx, s)
}
