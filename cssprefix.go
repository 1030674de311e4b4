package cssprefix

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/cssprefix/config"
	"github.com/npillmayer/cssprefix/engine"
)

// Host is an editor host the extension runs in.
type Host interface {
	// ActiveEditor returns the editor having focus, if any.
	ActiveEditor() (engine.Editor, bool)
	// Configuration returns the current configuration. It may be nil,
	// meaning the default configuration.
	Configuration() config.Source
	// OnSelectionChange subscribes to caret moves and selection changes.
	OnSelectionChange(func(engine.Editor)) (cancel func())
	// OnConfigurationChange subscribes to changes of the configuration.
	OnConfigurationChange(func(config.Source)) (cancel func())
}

// ErrNoHost is returned by Activate for a nil host.
var ErrNoHost = errors.New("cssprefix: no host")

// Extension is an activated prefixing extension.
type Extension struct {
	ctx     context.Context
	host    Host
	engine  *engine.Engine
	cancels []func()
	once    sync.Once
}

// Activate loads the host's configuration and subscribes to the host's
// events. Edits are applied with ctx; once ctx is done, events are ignored.
func Activate(ctx context.Context, host Host) (*Extension, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	x := &Extension{ctx: ctx, host: host, engine: engine.New(nil)}
	if src := host.Configuration(); src != nil {
		if err := x.engine.Reconfigure(src); err != nil {
			return nil, fmt.Errorf("cannot activate: %w", err)
		}
	}
	x.cancels = []func(){
		host.OnSelectionChange(x.selectionChanged),
		host.OnConfigurationChange(x.configurationChanged),
	}
	tracer().Infof("activated, prefixing %v", x.engine.Config().Load().Properties())
	return x, nil
}

// Deactivate ends all subscriptions. It may be called more than once.
func (x *Extension) Deactivate() {
	x.once.Do(func() {
		for _, cancel := range x.cancels {
			if cancel != nil {
				cancel()
			}
		}
		x.cancels = nil
		tracer().Infof("deactivated")
	})
}

// Engine returns the extension's prefixing engine.
func (x *Extension) Engine() *engine.Engine {
	return x.engine
}

// SyncAll brings every declaration of the active editor's document in sync
// with its prefixed variants.
func (x *Extension) SyncAll() (int, error) {
	ed, ok := x.host.ActiveEditor()
	if !ok {
		return 0, nil
	}
	return engine.SyncAll(x.ctx, ed, x.engine)
}

func (x *Extension) selectionChanged(ed engine.Editor) {
	if x.ctx.Err() != nil {
		return
	}
	if ed == nil {
		var ok bool
		if ed, ok = x.host.ActiveEditor(); !ok {
			return
		}
	}
	outcome := x.engine.Update(x.ctx, ed)
	tracer().Debugf("caret %s: %s", ed.Selection().Active, outcome)
}

func (x *Extension) configurationChanged(src config.Source) {
	if src == nil {
		x.engine.Config().Swap(config.Default())
		return
	}
	if err := x.engine.Reconfigure(src); err != nil {
		tracer().Errorf("keeping previous configuration: %v", err)
	}
}
