package specscot

import (
	"log"
	"os"
)

// Option defines an option for a Specscot
type Option func(*Specscot)

// OptionLog sets a custom logger for specscot to use
func OptionLog(logger *log.Logger) Option {
	return func(s *Specscot) {
		s.log.logger = logger
	}
}

// OptionLogfile sets a logfile for specscot to use. The file is closed on Close
func OptionLogfile(logfile *os.File) Option {
	return func(s *Specscot) {
		s.log.logger.SetOutput(logfile)
		s.closers = append(s.closers, logfile)
	}
}
