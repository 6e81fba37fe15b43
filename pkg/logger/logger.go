package logger

import (
	"os"

	"github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

var log *logr.Logger
var logrusLog *logrus.Logger

// InitLogger sets up the process-wide logger. Debug mode lowers the logrus
// level so that log.V(n) output from the API client becomes visible.
func InitLogger(debug bool) {
	logrusLog = logrus.New()
	logrusLog.SetOutput(os.Stderr)
	logrusLog.SetFormatter(&logrus.TextFormatter{})
	if debug {
		logrusLog.SetLevel(logrus.TraceLevel)
	}

	logg := logrusr.New(logrusLog)
	log = &logg
}

func GetLogger() *logr.Logger {
	if log == nil {
		InitLogger(false)
	}
	return log
}

func GetLogrus() *logrus.Logger {
	return logrusLog
}
