/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package log implements a small leveled logger that emits RFC 5424 records.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

type Level int

const (
	OFF      Level = 0
	DEBUG    Level = 1
	INFO     Level = 2
	WARN     Level = 3
	ERROR    Level = 4
	CRITICAL Level = 5
)

const (
	DefaultDepth = 3
	defaultID    = `syspath`
)

var (
	ErrInvalidLevel = errors.New("Log level is invalid")
	ErrNilWriter    = errors.New("Log writer is nil")
)

// Logger is the interface every component in this module logs through.
type Logger interface {
	Criticalf(string, ...interface{}) error
	Errorf(string, ...interface{}) error
	Warnf(string, ...interface{}) error
	Infof(string, ...interface{}) error
	Debugf(string, ...interface{}) error
	Critical(string, ...rfc5424.SDParam) error
	Error(string, ...rfc5424.SDParam) error
	Warn(string, ...rfc5424.SDParam) error
	Info(string, ...rfc5424.SDParam) error
	Debug(string, ...rfc5424.SDParam) error
	Hostname() string
	Appname() string
}

// StreamLogger writes one RFC 5424 record per line to an io.Writer.
type StreamLogger struct {
	mtx      sync.Mutex
	wtr      io.Writer
	lvl      Level
	hostname string
	appname  string
}

// New creates a StreamLogger at level INFO writing to w.
func New(w io.Writer, appname string) (*StreamLogger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if appname == `` {
		appname = defaultID
	}
	hostname, _ := os.Hostname()
	return &StreamLogger{
		wtr:      w,
		lvl:      INFO,
		hostname: hostname,
		appname:  appname,
	}, nil
}

// NewStderrLogger is a convenience wrapper used by command line tools.
func NewStderrLogger(appname string) *StreamLogger {
	l, _ := New(os.Stderr, appname)
	return l
}

func (l *StreamLogger) SetLevel(lvl Level) error {
	if !lvl.Valid() {
		return ErrInvalidLevel
	}
	l.mtx.Lock()
	l.lvl = lvl
	l.mtx.Unlock()
	return nil
}

func (l *StreamLogger) SetLevelString(v string) error {
	lvl, err := LevelFromString(v)
	if err != nil {
		return err
	}
	return l.SetLevel(lvl)
}

func (l *StreamLogger) GetLevel() Level {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.lvl
}

func (l *StreamLogger) Hostname() string { return l.hostname }
func (l *StreamLogger) Appname() string  { return l.appname }

func (l *StreamLogger) Criticalf(f string, args ...interface{}) error {
	return l.outputf(DefaultDepth, CRITICAL, f, args...)
}

func (l *StreamLogger) Errorf(f string, args ...interface{}) error {
	return l.outputf(DefaultDepth, ERROR, f, args...)
}

func (l *StreamLogger) Warnf(f string, args ...interface{}) error {
	return l.outputf(DefaultDepth, WARN, f, args...)
}

func (l *StreamLogger) Infof(f string, args ...interface{}) error {
	return l.outputf(DefaultDepth, INFO, f, args...)
}

func (l *StreamLogger) Debugf(f string, args ...interface{}) error {
	return l.outputf(DefaultDepth, DEBUG, f, args...)
}

func (l *StreamLogger) Critical(msg string, sds ...rfc5424.SDParam) error {
	return l.output(DefaultDepth, CRITICAL, msg, sds...)
}

func (l *StreamLogger) Error(msg string, sds ...rfc5424.SDParam) error {
	return l.output(DefaultDepth, ERROR, msg, sds...)
}

func (l *StreamLogger) Warn(msg string, sds ...rfc5424.SDParam) error {
	return l.output(DefaultDepth, WARN, msg, sds...)
}

func (l *StreamLogger) Info(msg string, sds ...rfc5424.SDParam) error {
	return l.output(DefaultDepth, INFO, msg, sds...)
}

func (l *StreamLogger) Debug(msg string, sds ...rfc5424.SDParam) error {
	return l.output(DefaultDepth, DEBUG, msg, sds...)
}

func (l *StreamLogger) outputf(depth int, lvl Level, f string, args ...interface{}) error {
	return l.output(depth+1, lvl, fmt.Sprintf(f, args...))
}

func (l *StreamLogger) output(depth int, lvl Level, msg string, sds ...rfc5424.SDParam) (err error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.lvl == OFF || lvl < l.lvl {
		return
	}
	m := rfc5424.Message{
		Priority:  lvl.priority(),
		Timestamp: time.Now(),
		Hostname:  l.hostname,
		AppName:   l.appname,
		ProcessID: fmt.Sprintf("%d", os.Getpid()),
		MessageID: callLoc(depth),
		Message:   []byte(msg),
	}
	if len(sds) > 0 {
		m.StructuredData = []rfc5424.StructuredData{
			{
				ID:         defaultID + `@1`,
				Parameters: sds,
			},
		}
	}
	var b []byte
	if b, err = m.MarshalBinary(); err != nil {
		return
	}
	b = append(b, '\n')
	_, err = l.wtr.Write(b)
	return
}

// callLoc returns file:line of the caller, rfc5424 caps MSGID at 32 bytes.
func callLoc(depth int) (s string) {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return `-`
	}
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	if s = fmt.Sprintf("%s:%d", file, line); len(s) > 32 {
		s = s[len(s)-32:]
	}
	return
}

func (lvl Level) Valid() bool {
	return lvl >= OFF && lvl <= CRITICAL
}

func (lvl Level) String() string {
	switch lvl {
	case OFF:
		return `OFF`
	case DEBUG:
		return `DEBUG`
	case INFO:
		return `INFO`
	case WARN:
		return `WARN`
	case ERROR:
		return `ERROR`
	case CRITICAL:
		return `CRITICAL`
	}
	return `UNKNOWN`
}

func (lvl Level) priority() rfc5424.Priority {
	switch lvl {
	case DEBUG:
		return rfc5424.User | rfc5424.Debug
	case INFO:
		return rfc5424.User | rfc5424.Info
	case WARN:
		return rfc5424.User | rfc5424.Warning
	case ERROR:
		return rfc5424.User | rfc5424.Error
	case CRITICAL:
		return rfc5424.User | rfc5424.Crit
	}
	return rfc5424.User | rfc5424.Notice
}

// LevelFromString parses a level name, case insensitive.
func LevelFromString(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case `OFF`:
		return OFF, nil
	case `DEBUG`:
		return DEBUG, nil
	case `INFO`:
		return INFO, nil
	case `WARN`, `WARNING`:
		return WARN, nil
	case `ERROR`:
		return ERROR, nil
	case `CRITICAL`:
		return CRITICAL, nil
	}
	return OFF, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
}

// KV creates a structured data parameter, the value is rendered with %v.
func KV(name string, value interface{}) rfc5424.SDParam {
	return rfc5424.SDParam{
		Name:  name,
		Value: fmt.Sprintf("%v", value),
	}
}

// KVErr is shorthand for KV("error", err).
func KVErr(err error) rfc5424.SDParam {
	return KV("error", err)
}
