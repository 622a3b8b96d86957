package specscot_test

import (
	"context"
	"os"
	"testing"

	"github.com/alexandre-normand/specscot"
	"github.com/alexandre-normand/specscot/config"
	"github.com/alexandre-normand/specscot/test/capture"
	"github.com/stretchr/testify/assert"
)

func TestNewFailsOnMissingRequiredConfiguration(t *testing.T) {
	v := config.NewViperWithDefaults()
	v.Set(config.BotTokenKey, "xoxb-test")
	// App token, signing secret and gemini key left unset on purpose

	_, err := specscot.New("specscot", v, capture.NewAgent())

	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), config.AppTokenKey)
	}
}

func TestLogfileOptionUsed(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test")
	assert.Nil(t, err)

	defer os.Remove(tmpfile.Name()) // clean up

	v := config.NewViperWithDefaults()
	v.Set(config.BotTokenKey, "xoxb-test")
	v.Set(config.AppTokenKey, "xapp-test")
	v.Set(config.SigningSecretKey, "test-secret")
	v.Set(config.GeminiAPIKeyKey, "test-key")

	pmAgent := capture.NewAgent()
	pmAgent.Summary = "## Spec"

	bot, err := specscot.New("specscot", v, pmAgent, specscot.OptionLogfile(tmpfile))
	assert.Nil(t, err)
	defer bot.Close()

	bot.ProcessMention(context.Background(), specscot.Mention{Text: "<@BotUserID> draft spec", UserID: "U123", ChannelID: "C123"}, capture.NewMessageSender(), capture.NewFileUploader())

	logs, err := os.ReadFile(tmpfile.Name())
	assert.Nil(t, err)
	assert.Contains(t, string(logs), "spec.md uploaded")
}
