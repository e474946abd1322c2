package session

import (
	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/console"
	"github.com/kcaldas/dbgconsole/pkg/events"
	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/kcaldas/dbgconsole/pkg/transcript"
)

// Session is one interactive console together with the transcript a front end
// displays and the bus connecting them.
type Session struct {
	config     config.Config
	console    *console.Console
	transcript *transcript.Transcript
	bus        events.EventBus
	detach     func()
}

// NewSession wires tr to the executed-command events of bus.
func NewSession(cfg config.Config, cons *console.Console, tr *transcript.Transcript, bus events.EventBus) *Session {
	s := &Session{
		config:     cfg,
		console:    cons,
		transcript: tr,
		bus:        bus,
		detach:     tr.Attach(bus),
	}

	logging.NewSessionLogger("session", cons.SessionID()).Debug("session started", "prompt", cfg.Prompt)
	return s
}

// ID returns the console session id.
func (s *Session) ID() string { return s.console.SessionID() }

func (s *Session) Config() config.Config              { return s.config }
func (s *Session) Console() *console.Console          { return s.console }
func (s *Session) Transcript() *transcript.Transcript { return s.transcript }
func (s *Session) Bus() events.EventBus               { return s.bus }

// Prompt is the text shown before the command line.
func (s *Session) Prompt() string { return s.config.Prompt }

// Close stops feeding the transcript. It is safe to call more than once.
func (s *Session) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}
