// Package app wires configuration, clients, the response cache, and the
// domain services into one value shared by the console entrypoints.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/consilio/internal/cache"
	"github.com/bobmcallan/consilio/internal/clients/advisory"
	"github.com/bobmcallan/consilio/internal/clients/gemini"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/services/catalog"
	"github.com/bobmcallan/consilio/internal/services/clientgroup"
	"github.com/bobmcallan/consilio/internal/services/relationship"
	"github.com/bobmcallan/consilio/internal/services/template"
)

// App holds all initialized clients and services.
type App struct {
	Config              *common.Config
	Logger              *common.Logger
	Cache               *cache.ResourceCache
	AdvisoryClient      interfaces.AdvisoryClient
	GeminiClient        interfaces.GeminiClient
	CatalogService      interfaces.CatalogService
	ClientGroupService  interfaces.ClientGroupService
	RelationshipService interfaces.RelationshipService
	TemplateService     interfaces.TemplateService
	StartupTime         time.Time

	refreshCancel   context.CancelFunc
	warmCacheCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, clients, and services.
// configPath may be empty, in which case CONSILIO_CONFIG, then a
// consilio.toml next to the binary, then config/consilio.toml are tried.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("CONSILIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "consilio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/consilio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if missing := config.ValidateRequired(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %v", missing)
	}

	// Resolve relative log file path to binary directory
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	return NewAppWithConfig(config, logger, startupStart)
}

// NewAppWithConfig wires an App from an already-loaded configuration.
// Integration tests use this to point the stack at a stub platform.
func NewAppWithConfig(config *common.Config, logger *common.Logger, startupStart time.Time) (*App, error) {
	if startupStart.IsZero() {
		startupStart = time.Now()
	}

	responseCache := cache.New(config.Cache.MaxEntries)

	advisoryClient := advisory.NewClient(config.Platform.APIKey,
		advisory.WithBaseURL(config.Platform.BaseURL),
		advisory.WithLogger(logger),
		advisory.WithRateLimit(config.Platform.RateLimit),
		advisory.WithTimeout(config.Platform.GetTimeout()),
	)

	// Gemini is optional; description drafting degrades when absent.
	var geminiClient interfaces.GeminiClient
	if config.Gemini.APIKey != "" {
		gc, err := gemini.NewClient(context.Background(), config.Gemini.APIKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Gemini.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - description drafting unavailable")
		} else {
			geminiClient = gc
		}
	} else {
		logger.Info().Msg("Gemini API key not configured - description drafting unavailable")
	}

	catalogService := catalog.NewService(advisoryClient, responseCache, logger)
	clientGroupService := clientgroup.NewService(advisoryClient, responseCache, config.DefaultAdviser, logger)
	relationshipService := relationship.NewService(advisoryClient, responseCache, logger)
	templateService := template.NewService(advisoryClient, catalogService, geminiClient, responseCache,
		config.Allocation.GetTolerance(), logger)

	a := &App{
		Config:              config,
		Logger:              logger,
		Cache:               responseCache,
		AdvisoryClient:      advisoryClient,
		GeminiClient:        geminiClient,
		CatalogService:      catalogService,
		ClientGroupService:  clientGroupService,
		RelationshipService: relationshipService,
		TemplateService:     templateService,
		StartupTime:         startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close stops the background goroutines.
// Shutdown order: cancel refresh ticker, cancel warm cache.
func (a *App) Close() {
	if a.refreshCancel != nil {
		a.refreshCancel()
		a.refreshCancel = nil
	}
	if a.warmCacheCancel != nil {
		a.warmCacheCancel()
		a.warmCacheCancel = nil
	}
}

// StartWarmCache launches the background cache warming goroutine.
func (a *App) StartWarmCache() {
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	a.warmCacheCancel = warmCancel
	go func() {
		defer warmCancel()
		warmCache(warmCtx, a.CatalogService, a.TemplateService, a.Logger)
	}()
}

// StartCatalogRefresh launches the background catalog refresh goroutine.
func (a *App) StartCatalogRefresh() {
	refreshCtx, refreshCancel := context.WithCancel(context.Background())
	a.refreshCancel = refreshCancel
	go startCatalogRefresh(refreshCtx, a.CatalogService, a.Logger, common.FreshnessFunds)
}
