package applog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var levelNames = map[string]logrus.Level{
	"debug":   logrus.DebugLevel,
	"info":    logrus.InfoLevel,
	"warn":    logrus.WarnLevel,
	"warning": logrus.WarnLevel,
	"error":   logrus.ErrorLevel,
}

var base = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05.000000"}
	l.Level = logrus.InfoLevel
	l.Out = out
	return l
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	base.SetLevel(l)
}

// GetLogLevel returns the current global log level.
func GetLogLevel() logrus.Level { return base.GetLevel() }

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) { base.SetOutput(w) }

func logf(l logrus.Level, format string, args ...interface{}) {
	if !base.IsLevelEnabled(l) {
		return
	}
	// Without args the input is a plain message; formatting it again would turn
	// a literal % into %!x(MISSING).
	if len(args) == 0 {
		base.Log(l, format)
		return
	}
	base.Log(l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(logrus.DebugLevel, format, a...) }
func Infof(format string, a ...interface{})  { logf(logrus.InfoLevel, format, a...) }
func Warnf(format string, a ...interface{})  { logf(logrus.WarnLevel, format, a...) }
func Errorf(format string, a ...interface{}) { logf(logrus.ErrorLevel, format, a...) }

// TimeTrack logs how long a phase took at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
