// Package notify carries transient user-facing messages (toasts) produced by board operations
package notify

import (
	"sync"
	"time"

	"github.com/honeycarbs/job-tracker/pkg/logging"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one toast
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func Success(msg string) Notification {
	return Notification{Level: LevelSuccess, Message: msg, At: time.Now()}
}

func Error(msg string) Notification {
	return Notification{Level: LevelError, Message: msg, At: time.Now()}
}

func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg, At: time.Now()}
}

// Notifier receives notifications as operations complete
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification
var Discard Notifier = NotifierFunc(func(Notification) {})

// Multi fans a notification out to every non-nil notifier
func Multi(ns ...Notifier) Notifier {
	out := make([]Notifier, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return NotifierFunc(func(n Notification) {
		for _, target := range out {
			target.Notify(n)
		}
	})
}

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	log *logging.Logger
}

func NewLogNotifier(log *logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(n Notification) {
	if n.Level == LevelError {
		l.log.Warn("notification", "level", n.Level, "message", n.Message)
		return
	}
	l.log.Info("notification", "level", n.Level, "message", n.Message)
}

const DefaultFeedSize = 50

// Feed keeps the most recent notifications in memory, newest last
type Feed struct {
	mu    sync.Mutex
	size  int
	items []Notification
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{size: size}
}

func (f *Feed) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, n)
	if over := len(f.items) - f.size; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// Recent returns a copy of the buffered notifications
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Since returns notifications strictly newer than t
func (f *Feed) Since(t time.Time) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Notification
	for _, n := range f.items {
		if n.At.After(t) {
			out = append(out, n)
		}
	}
	return out
}
