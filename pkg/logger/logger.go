package logger

import (
	"fmt"
	stdlog "log"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger configures the standard logrus logger. Unknown levels fall
// back to INFO.
func SetupLogger(level string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)

	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: timestampFormat,
	})

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}

// StdLogger adapts the standard logrus logger for APIs that want a *log.Logger,
// such as http.Server.ErrorLog. Lines are emitted at WARN so server noise
// stays out of the captured debug log.
func StdLogger(component string) *stdlog.Logger {
	w := log.WithField("component", component).WriterLevel(log.WarnLevel)
	return stdlog.New(w, "", 0)
}
