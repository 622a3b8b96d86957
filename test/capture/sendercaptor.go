// Package capture provides captor implementations of the specscot interfaces
// to validate interactions in tests
package capture

// MessageSenderCaptor holds messages sent to it keyed by channel ID
type MessageSenderCaptor struct {
	SentMessages map[string][]string

	// Err, if set, is returned on every send
	Err error
}

// NewMessageSender returns a new initialized MessageSenderCaptor instance
func NewMessageSender() (sc *MessageSenderCaptor) {
	sc = new(MessageSenderCaptor)
	sc.SentMessages = make(map[string][]string)

	return sc
}

// SendNewMessage captures the details of a sent message (the message itself and
// the channel it's sent to)
func (sc *MessageSenderCaptor) SendNewMessage(message string, channelID string) (err error) {
	if sc.Err != nil {
		return sc.Err
	}

	if _, ok := sc.SentMessages[channelID]; !ok {
		sc.SentMessages[channelID] = make([]string, 0)
	}

	sc.SentMessages[channelID] = append(sc.SentMessages[channelID], message)

	return nil
}
