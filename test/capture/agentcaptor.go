package capture

import (
	"context"
)

// AgentCaptor captures PM agent invocations and answers with a canned summary
// or error
type AgentCaptor struct {
	Requests []string

	// Summary is the canned summary returned on every invocation
	Summary string

	// Err, if set, is returned instead of the summary
	Err error
}

// NewAgent returns a new initialized AgentCaptor instance
func NewAgent() (ac *AgentCaptor) {
	ac = new(AgentCaptor)
	ac.Requests = make([]string, 0)

	return ac
}

// GenerateSpec captures the request and returns the canned summary or error
func (ac *AgentCaptor) GenerateSpec(ctx context.Context, request string) (summary string, err error) {
	ac.Requests = append(ac.Requests, request)

	if ac.Err != nil {
		return "", ac.Err
	}

	return ac.Summary, nil
}
