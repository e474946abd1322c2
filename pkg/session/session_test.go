package session

import (
	"testing"

	"github.com/kcaldas/dbgconsole/pkg/commands"
	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/console"
	"github.com/kcaldas/dbgconsole/pkg/events"
	"github.com/kcaldas/dbgconsole/pkg/interpreter"
	"github.com/kcaldas/dbgconsole/pkg/transcript"
	"github.com/stretchr/testify/assert"
)

func newTestSession() *Session {
	cfg := config.Default()
	bus := events.NewEventBus()
	cons := console.New(console.Options{
		HistoryCapacity: cfg.HistoryCapacity,
		OutputCapacity:  cfg.OutputCapacity,
		Interpreter:     interpreter.New(commands.NewEchoCommand()),
		Publisher:       bus,
	})
	return NewSession(cfg, cons, transcript.New(cfg.OutputCapacity), bus)
}

func TestSession_TranscriptFollowsConsole(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	s.Console().Run("echo hi")

	assert.Equal(t, []string{"> echo hi", "hi"}, s.Transcript().Lines(s.Prompt()))
	assert.Equal(t, s.Console().SessionID(), s.ID())
}

func TestSession_Close(t *testing.T) {
	s := newTestSession()
	s.Close()
	s.Close()

	s.Console().Run("echo hi")
	assert.Equal(t, 0, s.Transcript().Len())
	assert.Equal(t, 0, s.Bus().(*events.SyncBus).SubscriberCount(events.TopicCommandExecuted))
}
