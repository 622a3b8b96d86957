package specscot

import (
	"github.com/slack-go/slack"
)

// MessageSender is implemented by any value that has the SendNewMessage method.
// The main purpose is a slight decoupling of the slack.Client in order for the
// mention handler to be testable without a live slack connection
type MessageSender interface {
	// SendNewMessage sends a new message to the specified channelID
	SendNewMessage(message string, channelID string) (err error)
}

// slackMsgSender is the default and main implementing type for the MessageSender interface
type slackMsgSender struct {
	api *slack.Client
}

// SendNewMessage sends a new message using the slack web api
func (s *slackMsgSender) SendNewMessage(message string, channelID string) (err error) {
	_, _, err = s.api.PostMessage(channelID, slack.MsgOptionText(message, false), slack.MsgOptionAsUser(true))

	return err
}
