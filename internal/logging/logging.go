package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide console logger
func Setup(isProd bool) {
	if isProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
}

// NewErrorSink returns a logger that appends JSON error records to path.
// The returned closer releases the file.
func NewErrorSink(path string) (*logrus.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	sink := logrus.New()
	sink.SetOutput(f)
	sink.SetFormatter(&logrus.JSONFormatter{})
	sink.SetLevel(logrus.ErrorLevel)
	return sink, f, nil
}
