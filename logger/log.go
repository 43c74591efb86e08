// Copyright 2024-2026 The Adaptrie Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger provides the leveled logger used by the adaptrie tool.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the adaptrie logger. Debug and trace output are gated
// independently of each other.
type Logger struct {
	logger *logrus.Logger
	fmt    *labelFormatter
	debug  bool
	trace  bool
	closer io.Closer
}

// LogOption configures a Logger.
type LogOption interface {
	isLoggerOption()
}

// LogUTC controls whether timestamps in the log output should be UTC or local time.
type LogUTC bool

func (l LogUTC) isLoggerOption() {}

func setOptions(f *labelFormatter, opts []LogOption) {
	for _, opt := range opts {
		switch v := opt.(type) {
		case LogUTC:
			f.utc = bool(v)
		}
	}
}

// NewStdLogger creates a logger with output directed to Stderr.
func NewStdLogger(time, debug, trace, colors, pid bool, opts ...LogOption) *Logger {
	f := newLabelFormatter(time, colors, pid)
	setOptions(f, opts)
	return newLogger(os.Stderr, f, debug, trace)
}

// NewFileLogger creates a logger with output directed to a file.
func NewFileLogger(filename string, time, debug, trace, pid bool, opts ...LogOption) *Logger {
	fileflags := os.O_WRONLY | os.O_APPEND | os.O_CREATE
	f, err := os.OpenFile(filename, fileflags, 0660)
	if err != nil {
		logrus.Fatalf("error opening file: %v", err)
	}
	lf := newLabelFormatter(time, false, pid)
	setOptions(lf, opts)
	l := newLogger(f, lf, debug, trace)
	l.closer = f
	return l
}

func newLogger(out io.Writer, f *labelFormatter, debug, trace bool) *Logger {
	lg := logrus.New()
	lg.SetOutput(out)
	lg.SetFormatter(f)
	lg.SetLevel(logrus.TraceLevel)
	return &Logger{logger: lg, fmt: f, debug: debug, trace: trace}
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Noticef logs a notice statement.
func (l *Logger) Noticef(format string, v ...any) {
	l.logger.Infof(format, v...)
}

// Warnf logs a warning statement.
func (l *Logger) Warnf(format string, v ...any) {
	l.logger.Warnf(format, v...)
}

// Errorf logs an error statement.
func (l *Logger) Errorf(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

// Fatalf logs a fatal error and exits.
func (l *Logger) Fatalf(format string, v ...any) {
	l.logger.Fatalf(format, v...)
}

// Debugf logs a debug statement.
func (l *Logger) Debugf(format string, v ...any) {
	if l.debug {
		l.logger.Debugf(format, v...)
	}
}

// Tracef logs a trace statement.
func (l *Logger) Tracef(format string, v ...any) {
	if l.trace {
		l.logger.Tracef(format, v...)
	}
}

const (
	timeFormat  = "2006/01/02 15:04:05.000000 "
	colorFormat = "[\x1b[%sm%s\x1b[0m] "
)

type labelFormatter struct {
	time bool
	utc  bool
	pid  string
	info string
	warn string
	err  string
	ftl  string
	dbg  string
	trc  string
}

func newLabelFormatter(time, colors, pid bool) *labelFormatter {
	f := &labelFormatter{time: time}
	if pid {
		f.pid = fmt.Sprintf("[%d] ", os.Getpid())
	}
	if colors {
		f.info = fmt.Sprintf(colorFormat, "32", "INF")
		f.warn = fmt.Sprintf(colorFormat, "0;93", "WRN")
		f.err = fmt.Sprintf(colorFormat, "31", "ERR")
		f.ftl = fmt.Sprintf(colorFormat, "31", "FTL")
		f.dbg = fmt.Sprintf(colorFormat, "36", "DBG")
		f.trc = fmt.Sprintf(colorFormat, "33", "TRC")
	} else {
		f.info = "[INF] "
		f.warn = "[WRN] "
		f.err = "[ERR] "
		f.ftl = "[FTL] "
		f.dbg = "[DBG] "
		f.trc = "[TRC] "
	}
	return f
}

func (f *labelFormatter) label(lvl logrus.Level) string {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel:
		return f.ftl
	case logrus.ErrorLevel:
		return f.err
	case logrus.WarnLevel:
		return f.warn
	case logrus.DebugLevel:
		return f.dbg
	case logrus.TraceLevel:
		return f.trc
	default:
		return f.info
	}
}

// Format implements logrus.Formatter.
func (f *labelFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(f.pid)
	if f.time {
		ts := e.Time
		if f.utc {
			ts = ts.UTC()
		}
		b.WriteString(ts.Format(timeFormat))
	}
	b.WriteString(f.label(e.Level))
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
