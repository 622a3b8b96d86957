package specscot

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

const (
	haltAdvisory = ":octagonal_sign: Pipeline halted (`HALT_PIPELINE=true`)."
	ackFormat    = ":seedling: Working on spec for <@%s> ..."
	errorFormat  = ":x: Error generating spec: %s"

	specFileTitle      = "spec.md"
	specFiletype       = "markdown"
	specInitialComment = "Here is the generated spec.md :page_facing_up:"
)

// Mention holds the attributes of an app mention that the handler cares about
type Mention struct {
	// Text is the raw text of the mention, including the bot reference
	Text string

	// UserID identifies the requesting user
	UserID string

	// ChannelID is where the mention happened and where replies go
	ChannelID string
}

// ProcessMention runs the full pipeline for one mention: halt check,
// acknowledgment, agent invocation, artifact write and upload. Mentions are
// isolated from one another: a failure is reported on the channel and logged
// but never propagates. It is exported so alternate transports (and tests) can
// drive the handler directly
func (s *Specscot) ProcessMention(ctx context.Context, m Mention, sender MessageSender, uploader FileUploader) {
	if s.halted {
		s.sayOrLog(sender, m.ChannelID, haltAdvisory)
		s.coreMetrics.mentionsProcessed.Add(ctx, 1, s.coreMetrics.byStatusAttrs[haltedStatus])

		return
	}

	s.logRequester(m)
	s.sayOrLog(sender, m.ChannelID, fmt.Sprintf(ackFormat, m.UserID))

	var err error
	d := measure(func() {
		err = s.generateAndUpload(ctx, m, uploader)
	})
	s.coreMetrics.mentionProcessingLatencyMillis.Record(ctx, d.Milliseconds(), s.coreMetrics.defaultAttrs)

	if err != nil {
		s.sayOrLog(sender, m.ChannelID, fmt.Sprintf(errorFormat, err.Error()))
		s.log.Printf("Error processing mention from [%s]: %v\n", m.UserID, err)
		s.coreMetrics.mentionsProcessed.Add(ctx, 1, s.coreMetrics.byStatusAttrs[failedStatus])

		return
	}

	s.log.Printf("%s uploaded to [%s]\n", specFileTitle, s.channel)
	s.coreMetrics.mentionsProcessed.Add(ctx, 1, s.coreMetrics.byStatusAttrs[succeededStatus])
}

// generateAndUpload invokes the PM agent with the mention text, writes the
// summary to a temporary artifact and uploads it to the configured channel.
// The artifact is removed whether the upload succeeds or not
func (s *Specscot) generateAndUpload(ctx context.Context, m Mention, uploader FileUploader) (err error) {
	summary, err := s.pmAgent.GenerateSpec(ctx, m.Text)
	if err != nil {
		return err
	}

	path, cleanup, err := writeSpecArtifact(summary)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = uploader.UploadFile(slack.FileUploadParameters{File: path, Filename: specFileTitle, Filetype: specFiletype, Title: specFileTitle},
		UploadToChannel(s.channel), UploadWithInitialComment(specInitialComment))

	return err
}

// logRequester logs who asked for a spec, resolving the user's name when the
// user info finder is available
func (s *Specscot) logRequester(m Mention) {
	if s.userInfoFinder == nil {
		return
	}

	if u, err := s.userInfoFinder.GetUserInfo(m.UserID); err == nil {
		s.log.Debugf("Generating spec for [%s] (%s)\n", u.RealName, m.UserID)
	}
}

// sayOrLog sends a message on a channel and logs the failure if the send fails.
// Reply failures don't abort the pipeline
func (s *Specscot) sayOrLog(sender MessageSender, channelID string, message string) {
	if err := sender.SendNewMessage(message, channelID); err != nil {
		s.log.Printf("Error sending message to [%s]: %v\n", channelID, err)
	}
}
