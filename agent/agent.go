// Package agent provides the PM agent invocation used by specscot to turn a
// mention into a generated spec. The interface is kept minimal so the engine
// (and its tests) don't depend on the gemini client
package agent

import (
	"context"
)

// Agent is implemented by any value that can turn a raw request into a spec
// summary. The (summary, err) return is the explicit success/failure result
// the engine branches on
type Agent interface {
	// GenerateSpec runs a bounded conversation with the agent and returns the
	// final summary text
	GenerateSpec(ctx context.Context, request string) (summary string, err error)
}
