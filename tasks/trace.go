package tasks

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// StartTrace truncates the trace file and tees the logs into it, at debug level
func StartTrace(path string) (io.Closer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.SetLevel(log.DebugLevel)

	log.WithField("file", path).Debugln("Trace started")

	return file, nil
}
