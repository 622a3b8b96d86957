package specscot

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/alexandre-normand/specscot/config"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/stretchr/testify/assert"
)

type discardWriter struct {
}

func (dw discardWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type cannedAgent struct {
	summary string
}

func (a *cannedAgent) GenerateSpec(ctx context.Context, request string) (summary string, err error) {
	return a.summary, nil
}

type noopSender struct {
}

func (ns noopSender) SendNewMessage(message string, channelID string) (err error) {
	return nil
}

// signalingUploader lets the test synchronize with the handler goroutine that
// dispatchEvent spawns
type signalingUploader struct {
	uploads chan slack.FileUploadParameters
}

func (u *signalingUploader) UploadFile(params slack.FileUploadParameters, options ...UploadOption) (file *slack.File, err error) {
	for _, opt := range options {
		opt(&params)
	}

	u.uploads <- params

	return new(slack.File), nil
}

func newDispatchTestBot(t *testing.T) (bot *Specscot) {
	v := config.NewViperWithDefaults()
	v.Set(config.BotTokenKey, "xoxb-test")
	v.Set(config.AppTokenKey, "xapp-test")
	v.Set(config.SigningSecretKey, "test-secret")
	v.Set(config.GeminiAPIKeyKey, "test-key")

	bot, err := New("specscot", v, &cannedAgent{summary: "## Spec"}, OptionLog(log.New(discardWriter{}, "", 0)))
	assert.Nil(t, err)

	bot.selfID = "BotUserID"

	return bot
}

func newAppMentionEvent(user string, text string, channel string) slackevents.EventsAPIEvent {
	return slackevents.EventsAPIEvent{Type: slackevents.CallbackEvent,
		InnerEvent: slackevents.EventsAPIInnerEvent{Type: "app_mention", Data: &slackevents.AppMentionEvent{Type: "app_mention", User: user, Text: text, Channel: channel}}}
}

func TestMentionToProcessIgnoresSelfMentions(t *testing.T) {
	bot := newDispatchTestBot(t)

	_, ok := bot.mentionToProcess(newAppMentionEvent("BotUserID", "<@BotUserID> draft spec", "C123"))

	assert.False(t, ok, "mentions from the bot itself should be ignored")
}

func TestMentionToProcessIgnoresNonCallbackEvents(t *testing.T) {
	bot := newDispatchTestBot(t)

	e := newAppMentionEvent("U123", "<@BotUserID> draft spec", "C123")
	e.Type = slackevents.URLVerification

	_, ok := bot.mentionToProcess(e)

	assert.False(t, ok, "only callback events should be processed")
}

func TestMentionToProcessIgnoresNonMentionEvents(t *testing.T) {
	bot := newDispatchTestBot(t)

	e := slackevents.EventsAPIEvent{Type: slackevents.CallbackEvent,
		InnerEvent: slackevents.EventsAPIInnerEvent{Type: "message", Data: &slackevents.MessageEvent{Type: "message", User: "U123", Text: "no mention here", Channel: "C123"}}}

	_, ok := bot.mentionToProcess(e)

	assert.False(t, ok, "only app mention events should be processed")
}

func TestMentionToProcessMapsMentionFields(t *testing.T) {
	bot := newDispatchTestBot(t)

	m, ok := bot.mentionToProcess(newAppMentionEvent("U123", "<@BotUserID> draft spec for login flow", "C123"))

	if assert.True(t, ok) {
		assert.Equal(t, Mention{Text: "<@BotUserID> draft spec for login flow", UserID: "U123", ChannelID: "C123"}, m)
	}
}

func TestDispatchEventProcessesForeignMentionOnly(t *testing.T) {
	bot := newDispatchTestBot(t)

	uploader := &signalingUploader{uploads: make(chan slack.FileUploadParameters, 2)}

	// If the self-mention guard ever regresses, this first dispatch would
	// produce a second upload below
	bot.dispatchEvent(context.Background(), newAppMentionEvent("BotUserID", "<@BotUserID> draft spec", "C123"), noopSender{}, uploader)
	bot.dispatchEvent(context.Background(), newAppMentionEvent("U123", "<@BotUserID> draft spec", "C123"), noopSender{}, uploader)

	select {
	case upload := <-uploader.uploads:
		assert.Equal(t, "spec.md", upload.Title)
		assert.Equal(t, []string{"#build-bot"}, upload.Channels)
	case <-time.After(5 * time.Second):
		assert.Fail(t, "expected a mention from another user to reach the handler and produce an upload")
	}

	select {
	case <-uploader.uploads:
		assert.Fail(t, "the self-mention should not have been processed")
	case <-time.After(50 * time.Millisecond):
	}
}
