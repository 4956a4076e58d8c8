// Package logx is the diagnostics layer shared by the tuntap packages.
// Output is gated by a numeric trace level: 0 is silent, 1 reports device
// lifecycle events, 2 and above add raw ioctl traffic.
package logx

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// EnvTrace names the environment variable read by InitFromEnv.
const EnvTrace = "TUNTAP_TRACE"

// level is read on every logging call and may be changed while devices
// are being opened on other goroutines.
var level atomic.Int32

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	// Level gating happens here, not in logrus.
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

func init() { InitFromEnv() }

func SetLevel(l int) { level.Store(int32(l)) }

// GetLevel returns the current trace level.
func GetLevel() int { return int(level.Load()) }

// SetOutput redirects all diagnostics to w.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Logger exposes the underlying logger so embedding programs can change
// its formatter or hooks.
func Logger() *logrus.Logger { return std }

func InitFromEnv() {
	v := os.Getenv(EnvTrace)
	if v == "" {
		return
	}
	x, err := strconv.Atoi(v)
	if err != nil {
		std.WithField(EnvTrace, v).Warn("ignoring invalid trace level")
		return
	}
	SetLevel(x)
}

func Printf(l int, format string, v ...any) {
	if GetLevel() >= l {
		std.Log(logrusLevel(l), fmt.Sprintf(format, v...))
	}
}

// Fields logs msg with structured fields at trace level l.
func Fields(l int, msg string, f logrus.Fields) {
	if GetLevel() >= l {
		std.WithFields(f).Log(logrusLevel(l), msg)
	}
}

func logrusLevel(l int) logrus.Level {
	switch {
	case l <= 1:
		return logrus.InfoLevel
	case l == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
