//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/events"
	"github.com/kcaldas/dbgconsole/pkg/session"
)

var busSet = wire.NewSet(
	ProvideEventBus,
	wire.Bind(new(events.EventBus), new(*events.SyncBus)),
	wire.Bind(new(events.Publisher), new(*events.SyncBus)),
)

// InitializeSession is an injector function - Wire will generate the implementation
func InitializeSession(cfg config.Config) (*session.Session, error) {
	wire.Build(
		busSet,
		ProvideInterpreter,
		ProvideConsole,
		ProvideTranscript,
		session.NewSession,
	)
	return nil, nil
}
