package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/consilio/internal/app"
	"github.com/bobmcallan/consilio/internal/common"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop MCP clients)")
	configFile := flag.String("config", "", "Path to config file")
	flag.Parse()

	a, err := app.NewApp(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	logger := a.Logger
	common.PrintBanner(a.Config, logger)

	imageCache := NewImageCache(a.Config.Cache.ImageDir, logger)

	mcpServer := server.NewMCPServer(
		a.Config.MCP.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)
	registerTools(mcpServer, a, imageCache)

	a.StartWarmCache()
	a.StartCatalogRefresh()

	if *stdio {
		// Stdio transport — reads stdin, writes stdout; logs stay on stderr
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		common.PrintShutdownBanner(logger)
		return
	}

	// Streamable HTTP transport — listens on the configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	addr := fmt.Sprintf(":%d", a.Config.MCP.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Starting MCP Streamable HTTP")
		errCh <- httpServer.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	common.PrintShutdownBanner(logger)
}

// registerTools registers all console tools on the MCP server.
func registerTools(s *server.MCPServer, a *app.App, imageCache *ImageCache) {
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createListFundsTool(), handleListFunds(a.CatalogService, logger))
	s.AddTool(createExportFundsCSVTool(), handleExportFundsCSV(a.CatalogService, logger))

	s.AddTool(createListClientGroupsTool(), handleListClientGroups(a.ClientGroupService, logger))
	s.AddTool(createGetClientGroupTool(), handleGetClientGroup(a.ClientGroupService, a.RelationshipService, logger))
	s.AddTool(createCreateClientGroupTool(), handleCreateClientGroup(a.ClientGroupService, logger))
	s.AddTool(createUpdateClientGroupTool(), handleUpdateClientGroup(a.ClientGroupService, logger))
	s.AddTool(createExportClientGroupsCSVTool(), handleExportClientGroupsCSV(a.ClientGroupService, logger))

	s.AddTool(createListRelationshipsTool(), handleListRelationships(a.RelationshipService, logger))
	s.AddTool(createAddRelationshipTool(), handleAddRelationship(a.RelationshipService, logger))
	s.AddTool(createRemoveRelationshipTool(), handleRemoveRelationship(a.RelationshipService, logger))

	s.AddTool(createNewDraftTool(), handleNewDraft(a.TemplateService, logger))
	s.AddTool(createUpdateDraftTool(), handleUpdateDraft(a.TemplateService, logger))
	s.AddTool(createListDraftsTool(), handleListDrafts(a.TemplateService, logger))
	s.AddTool(createDiscardDraftTool(), handleDiscardDraft(a.TemplateService, logger))
	s.AddTool(createSetWeightingTool(), handleSetWeighting(a.TemplateService, logger))
	s.AddTool(createDeselectFundTool(), handleDeselectFund(a.TemplateService, logger))
	s.AddTool(createReviewDraftTool(), handleReviewDraft(a.TemplateService, imageCache, logger))
	s.AddTool(createSuggestDescriptionTool(), handleSuggestDescription(a.TemplateService, logger))
	s.AddTool(createSubmitTemplateTool(), handleSubmitTemplate(a.TemplateService, logger))
	s.AddTool(createListTemplatesTool(), handleListTemplates(a.TemplateService, logger))
}
