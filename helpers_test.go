package apierror

import (
	"context"
	"sync"
	"time"
)

type recordingLogger struct {
	lock   sync.Mutex
	levels []string
	events []interface{}
}

func (l *recordingLogger) record(level string, event interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.levels = append(l.levels, level)
	l.events = append(l.events, event)
}

func (l *recordingLogger) Debug(event interface{})               { l.record("debug", event) }
func (l *recordingLogger) Info(event interface{})                { l.record("info", event) }
func (l *recordingLogger) Warn(event interface{})                { l.record("warn", event) }
func (l *recordingLogger) Error(event interface{})               { l.record("error", event) }
func (*recordingLogger) SetField(name string, value interface{}) {}
func (l *recordingLogger) Copy() Logger {
	return l
}

func (l *recordingLogger) Levels() []string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]string{}, l.levels...)
}

func (l *recordingLogger) Events() []interface{} {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]interface{}{}, l.events...)
}

func (l *recordingLogger) LogFn(context.Context) Logger { return l }

type statCall struct {
	kind string
	stat string
	tags []string
}

type recordingStat struct {
	lock  sync.Mutex
	calls []statCall
}

func (s *recordingStat) record(kind string, stat string, tags []string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.calls = append(s.calls, statCall{kind: kind, stat: stat, tags: tags})
}

func (s *recordingStat) Gauge(stat string, value float64, tags ...string) {
	s.record("gauge", stat, tags)
}
func (s *recordingStat) Count(stat string, count float64, tags ...string) {
	s.record("count", stat, tags)
}
func (s *recordingStat) Histogram(stat string, value float64, tags ...string) {
	s.record("histogram", stat, tags)
}
func (s *recordingStat) Timing(stat string, value time.Duration, tags ...string) {
	s.record("timing", stat, tags)
}
func (*recordingStat) AddTags(tags ...string) {}
func (*recordingStat) GetTags() []string {
	return []string{}
}

func (s *recordingStat) Calls() []statCall {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]statCall{}, s.calls...)
}

func (s *recordingStat) StatFn(context.Context) Stat { return s }

func newTestErrorWriter() (*ErrorWriter, *recordingLogger, *recordingStat) {
	logger := &recordingLogger{}
	stat := &recordingStat{}
	return &ErrorWriter{
		Responder: DefaultResponder(),
		LogFn:     logger.LogFn,
		StatFn:    stat.StatFn,
	}, logger, stat
}

type URLParam string

func (p URLParam) Get(context.Context, string) string {
	return string(p)
}
