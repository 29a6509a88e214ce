// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/clipboard"
	"github.com/bethropolis/tidecalc/internal/config"
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/modehandler"
	"github.com/bethropolis/tidecalc/internal/plugin"
	"github.com/bethropolis/tidecalc/internal/statusbar"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/bethropolis/tidecalc/internal/tui"
	"github.com/bethropolis/tidecalc/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the calculator.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	history       *history.Manager
	clipboard     *clipboard.Manager
	api           *calculatorAPI

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}

	flash utils.Debouncer // Redraw when the pressed button highlight expires

	// Owned by the event goroutine
	mouseDown bool
}

// NewApp creates and initializes a new application instance. A nil screen
// uses the terminal.
func NewApp(cfg *config.Config, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	// --- Create Core Components ---
	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New()
	} else {
		tuiManager, err = tui.NewWithScreen(screen)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	themesDir := cfg.Theme.Dir
	if themesDir == "" {
		themesDir = config.DefaultThemesDir()
	}
	themeManager := theme.NewManager(theme.Options{
		ThemesDir: themesDir,
		Initial:   cfg.Theme.Name,
		Dark:      cfg.Theme.Dark,
		Light:     cfg.Theme.Light,
	})

	eventManager := event.NewManager()
	historyManager := history.NewManager(cfg.Calculator.HistorySize, eventManager)
	historyManager.Attach(eventManager)

	statusBar := statusbar.New(statusbar.Config{
		MessageTimeout: config.MessageTimeout,
		Help:           statusbar.DefaultConfig().Help,
	})
	clip := clipboard.NewManager(cfg.Calculator.SystemClipboard)
	quitChan := make(chan struct{})

	// --- Create Mode Handler ---
	modeHandler := modehandler.New(modehandler.Config{
		State:          calc.NewState(),
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Themes:         themeManager,
		History:        historyManager,
		Clipboard:      clip,
		QuitSignal:     quitChan,
		Scientific:     cfg.Calculator.Scientific,
	})

	appInstance := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		history:       historyManager,
		clipboard:     clip,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}
	appInstance.api = newCalculatorAPI(appInstance)

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeHistoryChanged, appInstance.handleHistoryChanged)
	eventManager.Subscribe(event.TypeThemeChanged, appInstance.handleThemeChanged)
	eventManager.Subscribe(event.TypeModeChanged, appInstance.handleModeChanged)

	// --- Commands and Plugins (plugins register commands via the API) ---
	registerAppCommands(appInstance)
	if err := registerPlugins(appInstance.pluginManager, cfg); err != nil {
		logger.Warnf("App: %v", err)
	}
	appInstance.pluginManager.InitializePlugins(appInstance.api)

	appInstance.applyThemeStyle()
	return appInstance, nil
}

// Run starts the application's main event and drawing loops. It returns
// after a quit request, with the screen finalised.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.flash.Stop()

	go a.eventLoop() // Ends when the screen is finalised

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s %s · press : for commands", config.AppName, config.Version)
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit: // Closed by ModeHandler.Quit
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events, delegating input to the ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)

		case *tcell.EventMouse:
			needsRedraw = a.handleMouse(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
			a.scheduleFlashEnd()
		}
	}
}

// handleMouse acts on the press edge of the primary button only.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := a.mouseDown
	a.mouseDown = pressed
	if !pressed || wasDown {
		return false
	}

	x, y := ev.Position()
	w, h := a.tuiManager.Size()
	layout := tui.ComputeLayout(w, h, a.modeHandler.IsScientific())
	if layout.TooSmall {
		return false
	}
	b, ok := layout.Keypad.HitTest(x, y)
	if !ok {
		return false
	}
	logger.DebugTagf("mouse", "App: Click at (%d,%d) on %q", x, y, b.Label)
	return a.modeHandler.HandleAction(b.Action, b.Label)
}

// scheduleFlashEnd redraws once the pressed button highlight expires.
func (a *App) scheduleFlashEnd() {
	a.flash.Debounce(config.FlashDuration, a.requestRedraw)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetThemeManager returns the theme manager.
func (a *App) GetThemeManager() *theme.Manager {
	return a.themeManager
}
