package app

import (
	"context"
	"fmt"

	"film-catalog/internal/config"
	"film-catalog/internal/controllers"
	"film-catalog/internal/gui"
	"film-catalog/internal/logger"
	"film-catalog/internal/models"
	"film-catalog/internal/services"
	"film-catalog/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Film Catalog"
	AppID      = "com.filmcatalog.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	store      *store.Store
	table      *models.TableModel
	search     *controllers.SearchController
	form       *controllers.FormController
	exporter   *services.ExportService
	handlers   *Handlers
	lifecycle  *Lifecycle
	logger     logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*Application, error) {
	return newWithFyneApp(ctx, app.NewWithID(AppID), cfg, log)
}

func newWithFyneApp(ctx context.Context, fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"database": cfg.DatabasePath,
	})

	st, err := store.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("open film store: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	table := models.NewTableModel(st, log)
	search := controllers.NewSearchController(st, table, log)
	form := controllers.NewFormController(st, search, log)
	exporter := services.NewExportService(log)
	guiManager := gui.NewManager(window, table, log)

	table.SetRepopulatedHandler(guiManager.RefreshGrid)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		store:      st,
		table:      table,
		search:     search,
		form:       form,
		exporter:   exporter,
		lifecycle:  NewLifecycle(st, guiManager, log),
		logger:     log,
	}
	application.handlers = NewHandlers(ctx, form, search, table, exporter, st, guiManager, log)
	application.setupHandlers()

	if err := application.handlers.LoadInitial(); err != nil {
		application.lifecycle.Shutdown()
		return nil, fmt.Errorf("load films: %w", err)
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"films": table.RowCount(),
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	h := a.handlers

	a.guiManager.SetSaveHandler(h.HandleSave)
	a.guiManager.SetNewHandler(h.HandleNew)
	a.guiManager.SetExportHandler(h.HandleExport)
	a.guiManager.SetDeleteHandler(h.HandleDelete)
	a.guiManager.SetPasteHandler(h.HandlePaste)
	a.guiManager.SetSearchHandler(h.HandleSearch)
	a.guiManager.SetCellCommitHandler(h.HandleCellCommit)
	a.guiManager.SetRowSelectedHandler(h.HandleRowSelected)
	a.guiManager.SetupMenus(h.HandleExport, a.quit, a.showAbout)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.quit()
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.guiManager.UpdateStatus("Ready")
	a.window.ShowAndRun()

	// Run returns after the last window closes; Shutdown is a no-op if
	// quit already ran.
	a.lifecycle.Shutdown()
	a.logger.Info("Application", "terminated", nil)
	return nil
}

func (a *Application) quit() {
	a.lifecycle.Shutdown()
	a.window.Close()
	a.fyneApp.Quit()
}

func (a *Application) showAbout() {
	a.guiManager.ShowInfo("About "+AppName,
		fmt.Sprintf("%s %s\nDatabase: %s", AppName, AppVersion, a.store.Path()))
}
