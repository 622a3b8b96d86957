package agent

import (
	"context"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNeedsAnotherTurn(t *testing.T) {
	assert.True(t, needsAnotherTurn("## Login Flow Spec\n\nDraft so far...\n[CONTINUE]"))
	assert.True(t, needsAnotherTurn("partial draft [CONTINUE]\n\n"))
	assert.False(t, needsAnotherTurn("## Login Flow Spec\n\nAll done."))
	assert.False(t, needsAnotherTurn("[CONTINUE] but the marker isn't at the end"))
	assert.False(t, needsAnotherTurn(""))
}

func TestTrimContinuationMarker(t *testing.T) {
	assert.Equal(t, "## Login Flow Spec\n\nDraft so far...", trimContinuationMarker("## Login Flow Spec\n\nDraft so far...\n[CONTINUE]\n"))
	assert.Equal(t, "## Login Flow Spec\n\nAll done.", trimContinuationMarker("## Login Flow Spec\n\nAll done."))
}

func TestNewGeminiRejectsNonPositiveTurnBound(t *testing.T) {
	_, err := NewGemini(context.Background(), "test-key", "gemini-2.0-flash", 0)

	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "maxTurns")
	}
}
