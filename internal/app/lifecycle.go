package app

import (
	"film-catalog/internal/gui"
	"film-catalog/internal/logger"
	"film-catalog/internal/shutdown"
	"film-catalog/internal/store"
)

// Lifecycle closes the window's collaborators in dependency order: the GUI
// first, the store last.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(st *store.Store, gm *gui.Manager, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("store", st.Close)
	manager.Register("gui", func() error {
		gm.Shutdown()
		return nil
	})

	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	if err := l.manager.Shutdown(); err != nil {
		l.logger.Error("Lifecycle", err, nil)
	}
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
