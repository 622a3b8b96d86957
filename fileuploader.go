package specscot

import (
	"github.com/slack-go/slack"
)

// SlackFileUploader is implemented by any value that has the UploadFile method. slack.Client
// implements it. The main purpose remains is a slight decoupling of the slack.Client in order
// for the mention handler to be able to write cleaner tests more easily.
type SlackFileUploader interface {
	// UploadFile uploads a file to slack. For more info in this API, check
	// https://godoc.org/github.com/slack-go/slack#Client.UploadFile
	UploadFile(params slack.FileUploadParameters) (file *slack.File, err error)
}

// FileUploader is implemented by any value that has the UploadFile method. slack.Client *almost*
// implements it but requires a thin wrapping to do so to handle UploadOption there for
// added extensibility.
type FileUploader interface {
	// UploadFile uploads a file to slack with the UploadOptions applied
	UploadFile(params slack.FileUploadParameters, options ...UploadOption) (file *slack.File, err error)
}

// UploadOption defines an option on a FileUploadParameters (i.e. destination channel)
type UploadOption func(params *slack.FileUploadParameters)

// UploadToChannel sets the destination channel of the upload
func UploadToChannel(channel string) UploadOption {
	return func(p *slack.FileUploadParameters) {
		p.Channels = []string{channel}
	}
}

// UploadWithInitialComment sets the comment posted along with the uploaded file
func UploadWithInitialComment(comment string) UploadOption {
	return func(p *slack.FileUploadParameters) {
		p.InitialComment = comment
	}
}

// DefaultFileUploader holds a bare-bone SlackFileUploader
type DefaultFileUploader struct {
	slackFileUploader SlackFileUploader
}

// NewFileUploader returns a new DefaultFileUploader wrapping a SlackFileUploader
func NewFileUploader(slackFileUploader SlackFileUploader) (fileUploader *DefaultFileUploader) {
	fileUploader = new(DefaultFileUploader)
	fileUploader.slackFileUploader = slackFileUploader

	return fileUploader
}

// UploadFile uploads a file given the slack.FileUploadParameters with the UploadOptions applied to it
func (fileUploader *DefaultFileUploader) UploadFile(params slack.FileUploadParameters, options ...UploadOption) (file *slack.File, err error) {
	for _, opt := range options {
		opt(&params)
	}

	return fileUploader.slackFileUploader.UploadFile(params)
}
