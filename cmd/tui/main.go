package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/calc"
	"github.com/quantumos-ai/turnkey-tui/internal/config"
	"github.com/quantumos-ai/turnkey-tui/internal/logger"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/screen"
	"go.uber.org/zap"
)

// AppModel represents the main TUI application model
type AppModel struct {
	router *router.Router
	width  int
	height int

	client   *api.Client
	sessions session.Store
	logger   *zap.Logger
}

// NewAppModel creates a new application model
func NewAppModel(client *api.Client, sessions session.Store, appLogger *zap.Logger) *AppModel {
	// A persisted session skips the login screen.
	var initial router.Screen
	if sess, ok := sessions.Get(); ok && sess.Authenticated && sess.ContactID != "" {
		initial = screen.NewMainMenuScreen(sessions)
	} else {
		initial = screen.NewLoginScreen(client, sessions, appLogger)
	}

	return &AppModel{
		router:   router.New(initial),
		client:   client,
		sessions: sessions,
		logger:   appLogger,
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Init(),
		tea.EnterAltScreen,
	)
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.router.SetSize(msg.Width, msg.Height)

	case ui.RouterMsg:
		// Handle navigation requests
		if cmd := m.handleNavigation(msg.To); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		updatedRouter, cmd := m.router.Update(msg)
		m.router = updatedRouter.(*router.Router)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleNavigation handles navigation to different screens
func (m *AppModel) handleNavigation(route ui.Route) tea.Cmd {
	var newScreen router.Screen

	switch route {
	case ui.RouteLogin:
		newScreen = screen.NewLoginScreen(m.client, m.sessions, m.logger)

	case ui.RouteMainMenu:
		newScreen = screen.NewMainMenuScreen(m.sessions)

	case ui.RouteCalculator:
		newScreen = screen.NewCalculatorScreen(m.client, m.sessions, m.logger)

	case ui.RouteQuestionnaire:
		newScreen = screen.NewQuestionnaireScreen(m.client, m.sessions, m.logger)

	case ui.RouteVideos:
		newScreen = screen.NewVideosScreen(m.client, m.sessions, m.logger)

	case ui.RouteProperties:
		newScreen = screen.NewPropertiesScreen()

	default:
		// Unknown route, stay on current screen
		return nil
	}

	// Login and main menu swap in place; everything else stacks so esc
	// walks back.
	if route == ui.RouteMainMenu || route == ui.RouteLogin {
		return m.router.Replace(newScreen)
	}
	return m.router.Push(newScreen)
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	return m.router.View()
}

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logs go to a file so they don't tear the alt screen.
	appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging, cfg.LogPath)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	if err := calc.ValidateTables(); err != nil {
		appLogger.Fatal("invalid projection tables", zap.Error(err))
	}

	sessions, err := session.NewFileStore(cfg.SessionPath, appLogger)
	if err != nil {
		appLogger.Fatal("failed to open session store", zap.Error(err))
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, appLogger)

	// Reachability probe. Login surfaces request errors on its own, so a
	// dead backend only gets a warning here.
	pingCtx, cancel := context.WithTimeout(rootCtx, 15*time.Second)
	if err := client.Ping(pingCtx, 3); err != nil {
		appLogger.Warn("backend unreachable at startup", zap.Error(err))
	}
	cancel()

	appLogger.Info("🏠 Starting Turnkey Investment Calculator TUI",
		zap.String("api_base_url", cfg.APIBaseURL))

	program := tea.NewProgram(
		NewAppModel(client, sessions, appLogger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		if _, err := program.Run(); err != nil {
			appLogger.Error("💥 TUI application failed", zap.Error(err))
		}
		stop()
	}()

	<-rootCtx.Done()

	appLogger.Info("🛑 Shutting down")
	program.Quit()
}
