package cssprefix

import (
	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/engine"
)

// Session is a Host for a single document buffer. It is not safe for
// concurrent use.
type Session struct {
	buf       *document.Buffer
	conf      config.Source
	listeners map[int]func(config.Source)
	nextID    int
}

// NewSession creates a host for buf, configured by conf. conf may be nil.
func NewSession(buf *document.Buffer, conf config.Source) *Session {
	return &Session{
		buf:       buf,
		conf:      conf,
		listeners: make(map[int]func(config.Source)),
	}
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *document.Buffer {
	return s.buf
}

func (s *Session) ActiveEditor() (engine.Editor, bool) {
	return s.buf, s.buf != nil
}

func (s *Session) Configuration() config.Source {
	return s.conf
}

func (s *Session) OnSelectionChange(f func(engine.Editor)) (cancel func()) {
	return s.buf.OnSelectionChange(func(document.Selection) {
		f(s.buf)
	})
}

func (s *Session) OnConfigurationChange(f func(config.Source)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = f
	return func() {
		delete(s.listeners, id)
	}
}

// Configure replaces the session's configuration and notifies listeners.
func (s *Session) Configure(conf config.Source) {
	s.conf = conf
	for _, f := range s.listeners {
		f(conf)
	}
}

var _ Host = (*Session)(nil)
