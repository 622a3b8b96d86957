package agent

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	// continuationMarker is the token the agent is instructed to end a turn with
	// when the draft isn't complete yet. It drives the bounded turn loop
	continuationMarker = "[CONTINUE]"

	pmAgentInstruction = "You are a product manager agent. You turn feature requests " +
		"into a complete spec.md document in markdown. Work iteratively: if the draft " +
		"needs another pass, end your message with " + continuationMarker + " and keep " +
		"going when asked. When the spec is complete, reply with the full final " +
		"document and nothing else."

	continuePrompt = "Continue refining the spec. Reply with the full document."
)

// Gemini is the gemini-backed implementation of Agent. It runs the PM agent as
// a chat session bounded by maxTurns conversation turns
type Gemini struct {
	client   *genai.Client
	model    string
	maxTurns int
}

// NewGemini creates a new gemini-backed PM agent using the given API key and
// model, with the conversation bounded to maxTurns turns
func NewGemini(ctx context.Context, apiKey string, model string, maxTurns int) (g *Gemini, err error) {
	if maxTurns < 1 {
		return nil, errors.Errorf("maxTurns must be at least 1 but was [%d]", maxTurns)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, errors.Wrap(err, "error creating gemini client")
	}

	g = new(Gemini)
	g.client = client
	g.model = model
	g.maxTurns = maxTurns

	return g, nil
}

// GenerateSpec sends the request to the PM agent and keeps the conversation
// going while the agent signals an unfinished draft, up to the turn bound. The
// last turn's text is the summary
func (g *Gemini) GenerateSpec(ctx context.Context, request string) (summary string, err error) {
	chat, err := g.client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(pmAgentInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", errors.Wrap(err, "error starting PM agent conversation")
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: request})
	if err != nil {
		return "", errors.Wrap(err, "PM agent invocation failed")
	}

	summary = resp.Text()
	for turn := 1; turn < g.maxTurns && needsAnotherTurn(summary); turn++ {
		resp, err = chat.SendMessage(ctx, genai.Part{Text: continuePrompt})
		if err != nil {
			return "", errors.Wrapf(err, "PM agent invocation failed on turn [%d]", turn+1)
		}

		summary = resp.Text()
	}

	return trimContinuationMarker(summary), nil
}

// needsAnotherTurn returns true when the agent ended its turn signaling an
// unfinished draft
func needsAnotherTurn(turnText string) bool {
	return strings.HasSuffix(strings.TrimSpace(turnText), continuationMarker)
}

// trimContinuationMarker strips a trailing continuation marker left over when
// the turn bound is reached before the agent considered the draft done
func trimContinuationMarker(summary string) string {
	trimmed := strings.TrimSpace(summary)
	if strings.HasSuffix(trimmed, continuationMarker) {
		return strings.TrimSpace(strings.TrimSuffix(trimmed, continuationMarker))
	}

	return summary
}
