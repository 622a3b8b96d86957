package capture

import (
	"os"
	"strconv"
	"time"

	"github.com/alexandre-normand/specscot"
	"github.com/slack-go/slack"
)

// FileUploadCaptor captures file uploads recorded by invocations of UploadFile
type FileUploadCaptor struct {
	FileUploads []slack.FileUploadParameters

	// UploadedContents holds, for each capture, the content of the file that was
	// at params.File at upload time. Uploads are captured before the handler
	// cleans its temporary artifact up
	UploadedContents []string

	// Err, if set, is returned on every upload. The attempt is still captured
	Err error

	currentID int
}

// NewFileUploader returns a new FileUploadCaptor with an initialized array of FileUploads
func NewFileUploader() (fileUploadCaptor *FileUploadCaptor) {
	fileUploadCaptor = new(FileUploadCaptor)
	fileUploadCaptor.FileUploads = make([]slack.FileUploadParameters, 0)
	fileUploadCaptor.UploadedContents = make([]string, 0)

	return fileUploadCaptor
}

// UploadFile tracks a file upload for post-execution validation
func (f *FileUploadCaptor) UploadFile(params slack.FileUploadParameters, options ...specscot.UploadOption) (file *slack.File, err error) {
	for _, opt := range options {
		opt(&params)
	}

	f.FileUploads = append(f.FileUploads, params)

	if params.File != "" {
		content, rerr := os.ReadFile(params.File)
		if rerr == nil {
			f.UploadedContents = append(f.UploadedContents, string(content))
		}
	}

	if f.Err != nil {
		return nil, f.Err
	}

	file = new(slack.File)
	file.ID = strconv.Itoa(f.currentID)
	file.Name = params.Filename
	file.Filetype = params.Filetype
	file.Title = params.Title
	file.Created = currentJSONTime()

	// Increment id for the next upload
	f.currentID = f.currentID + 1

	return file, nil
}

// currentJSONTime creates a JSONTime value with the current time
func currentJSONTime() (now slack.JSONTime) {
	return slack.JSONTime(time.Now().Unix())
}
