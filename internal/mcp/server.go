package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xjkwak/market-trend-analyzer/internal/config"
	"github.com/xjkwak/market-trend-analyzer/internal/descriptions"
	"github.com/xjkwak/market-trend-analyzer/internal/docs"
	"github.com/xjkwak/market-trend-analyzer/internal/lookup"
	"github.com/xjkwak/market-trend-analyzer/internal/trends"
)

// Server represents the MCP server instance
type Server struct {
	config      *config.Config
	docsService *docs.Service
	mcpServer   *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, docsService *docs.Service) (*Server, error) {
	if docsService == nil {
		return nil, fmt.Errorf("docsService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // The tool table is fixed at startup
	)

	s := &Server{
		config:      cfg,
		docsService: docsService,
		mcpServer:   mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools. This table is the only
// dispatch mechanism: the orchestration layer consults it and calls tools by
// name with the declared parameters.
func (s *Server) registerTools() {
	analyzeLocalDocumentsTool := mcp.NewTool(
		"analyze_local_documents",
		mcp.WithDescription(descriptions.GetToolDescription("analyze_local_documents")),
		mcp.WithString("directory",
			mcp.Description("Directory containing PDF documents (uses the configured directory if empty)"),
		),
		mcp.WithNumber("max_pages",
			mcp.Description("Maximum pages extracted per document (default from server config)"),
		),
		mcp.WithNumber("max_chars_per_page",
			mcp.Description("Maximum characters extracted per page (default from server config)"),
		),
		mcp.WithNumber("max_chars_per_document",
			mcp.Description("Maximum characters kept per document (default from server config)"),
		),
	)
	s.mcpServer.AddTool(analyzeLocalDocumentsTool, s.handleAnalyzeLocalDocuments)

	validateDocumentTool := mcp.NewTool(
		"validate_document",
		mcp.WithDescription(descriptions.GetToolDescription("validate_document")),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file to validate"),
		),
	)
	s.mcpServer.AddTool(validateDocumentTool, s.handleValidateDocument)

	directoryStatsTool := mcp.NewTool(
		"directory_stats",
		mcp.WithDescription(descriptions.GetToolDescription("directory_stats")),
		mcp.WithString("directory",
			mcp.Description("Directory to summarize (uses the configured directory if empty)"),
		),
	)
	s.mcpServer.AddTool(directoryStatsTool, s.handleDirectoryStats)

	searchNewsTool := mcp.NewTool(
		"search_news_articles",
		mcp.WithDescription(descriptions.GetToolDescription("search_news_articles")),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain keyword to search for (e.g. fintech, healthcare)"),
		),
	)
	s.mcpServer.AddTool(searchNewsTool, s.handleSearchNews)

	searchSocialTool := mcp.NewTool(
		"search_social_posts",
		mcp.WithDescription(descriptions.GetToolDescription("search_social_posts")),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain keyword to search for"),
		),
	)
	s.mcpServer.AddTool(searchSocialTool, s.handleSearchSocial)

	searchResearchTool := mcp.NewTool(
		"search_research_papers",
		mcp.WithDescription(descriptions.GetToolDescription("search_research_papers")),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain keyword to search for"),
		),
	)
	s.mcpServer.AddTool(searchResearchTool, s.handleSearchResearch)

	comprehensiveTool := mcp.NewTool(
		"get_comprehensive_analysis",
		mcp.WithDescription(descriptions.GetToolDescription("get_comprehensive_analysis")),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain keyword to analyze"),
		),
	)
	s.mcpServer.AddTool(comprehensiveTool, s.handleComprehensiveAnalysis)

	analyzeCollectedTool := mcp.NewTool(
		"analyze_collected_results",
		mcp.WithDescription(descriptions.GetToolDescription("analyze_collected_results")),
		mcp.WithString("collected_json",
			mcp.Required(),
			mcp.Description("JSON object with news/research/social item arrays, "+
				"or a get_comprehensive_analysis result"),
		),
	)
	s.mcpServer.AddTool(analyzeCollectedTool, s.handleAnalyzeCollected)

	generateSummaryTool := mcp.NewTool(
		"generate_summary",
		mcp.WithDescription(descriptions.GetToolDescription("generate_summary")),
		mcp.WithString("analysis_json",
			mcp.Required(),
			mcp.Description("JSON output of analyze_collected_results"),
		),
	)
	s.mcpServer.AddTool(generateSummaryTool, s.handleGenerateSummary)

	weatherTool := mcp.NewTool(
		"get_weather",
		mcp.WithDescription(descriptions.GetToolDescription("get_weather")),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name (e.g. New York)"),
		),
	)
	s.mcpServer.AddTool(weatherTool, s.handleGetWeather)

	timeTool := mcp.NewTool(
		"get_current_time",
		mcp.WithDescription(descriptions.GetToolDescription("get_current_time")),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name (e.g. New York)"),
		),
	)
	s.mcpServer.AddTool(timeTool, s.handleGetCurrentTime)

	serverInfoTool := mcp.NewTool(
		"trend_server_info",
		mcp.WithDescription(descriptions.GetToolDescription("trend_server_info")),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleAnalyzeLocalDocuments(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := ""
	if dir, ok := args["directory"].(string); ok {
		directory = dir
	}

	limits := s.defaultLimits()
	if v, ok := args["max_pages"].(float64); ok && v > 0 {
		limits.MaxPages = int(v)
	}
	if v, ok := args["max_chars_per_page"].(float64); ok && v > 0 {
		limits.MaxCharsPerPage = int(v)
	}
	if v, ok := args["max_chars_per_document"].(float64); ok && v > 0 {
		limits.MaxCharsPerDocument = int(v)
	}

	report, err := s.docsService.AnalyzeDirectory(ctx, directory, limits)
	if err != nil {
		// Only context cancellation escapes the pipeline.
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toolResultJSON(report)
}

func (s *Server) handleValidateDocument(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.docsService.ValidateFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toolResultJSON(result)
}

func (s *Server) handleDirectoryStats(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	directory := ""
	if dir, ok := request.GetArguments()["directory"].(string); ok {
		directory = dir
	}

	result, err := s.docsService.GetDirectoryStats(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toolResultJSON(result)
}

func (s *Server) handleSearchNews(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(trends.SearchNews(domain))
}

func (s *Server) handleSearchSocial(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(trends.SearchSocialPosts(domain))
}

func (s *Server) handleSearchResearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(trends.SearchResearchPapers(domain))
}

func (s *Server) handleComprehensiveAnalysis(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(trends.ComprehensiveAnalysis(domain))
}

func (s *Server) handleAnalyzeCollected(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	raw, err := request.RequireString("collected_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var inputs trends.CollectedInputs
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid collected_json: %v", err)), nil
	}

	return toolResultJSON(trends.AnalyzeCollected(inputs))
}

func (s *Server) handleGenerateSummary(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	raw, err := request.RequireString("analysis_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var analysis trends.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis_json: %v", err)), nil
	}

	return toolResultJSON(trends.GenerateSummary(analysis))
}

func (s *Server) handleGetWeather(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(lookup.Weather(city))
}

func (s *Server) handleGetCurrentTime(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResultJSON(lookup.CurrentTime(city))
}

func (s *Server) handleServerInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := s.docsService.ServerInfo(s.config.ServerName, s.config.Version, s.defaultLimits(), s.availableTools())
	return mcp.NewToolResultText(s.formatServerInfoResult(info)), nil
}

// defaultLimits converts the configured caps into pipeline limits.
func (s *Server) defaultLimits() docs.Limits {
	return docs.Limits{
		MaxPages:            s.config.MaxPages,
		MaxCharsPerPage:     s.config.MaxCharsPerPage,
		MaxCharsPerDocument: s.config.MaxCharsPerDocument,
	}
}

// availableTools summarizes the registered tool table for server info.
func (s *Server) availableTools() []docs.ToolInfo {
	return []docs.ToolInfo{
		{
			Name:        "analyze_local_documents",
			Description: "Extract bounded text from every PDF document in a directory",
			Parameters: "directory (optional), max_pages (optional), max_chars_per_page (optional), " +
				"max_chars_per_document (optional)",
		},
		{
			Name:        "validate_document",
			Description: "Validate that a file is a readable PDF document",
			Parameters:  "path (required)",
		},
		{
			Name:        "directory_stats",
			Description: "Get statistics about the PDF documents in a directory",
			Parameters:  "directory (optional)",
		},
		{
			Name:        "search_news_articles",
			Description: "Collect news articles about a domain keyword",
			Parameters:  "domain (required)",
		},
		{
			Name:        "search_social_posts",
			Description: "Collect social media posts about a domain keyword",
			Parameters:  "domain (required)",
		},
		{
			Name:        "search_research_papers",
			Description: "Collect research paper titles about a domain keyword",
			Parameters:  "domain (required)",
		},
		{
			Name:        "get_comprehensive_analysis",
			Description: "Collect news and social content for a domain in one combined result",
			Parameters:  "domain (required)",
		},
		{
			Name:        "analyze_collected_results",
			Description: "Extract keywords, topics, and notes from collected content",
			Parameters:  "collected_json (required)",
		},
		{
			Name:        "generate_summary",
			Description: "Generate an executive summary from analysis results",
			Parameters:  "analysis_json (required)",
		},
		{
			Name:        "get_weather",
			Description: "Get the weather report for a supported city",
			Parameters:  "city (required)",
		},
		{
			Name:        "get_current_time",
			Description: "Get the current time in a supported city",
			Parameters:  "city (required)",
		},
		{
			Name:        "trend_server_info",
			Description: "Get server status, limits, tools, and directory contents",
			Parameters:  "none",
		},
	}
}

// formatServerInfoResult renders the server info as readable text.
func (s *Server) formatServerInfoResult(result *docs.ServerInfoResult) string {
	text := fmt.Sprintf("%s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("Documents Directory: %s\n", result.DocsDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n", result.MaxFileSize/(1024*1024))
	text += fmt.Sprintf("Extraction Limits: %d pages, %d chars/page, %d chars/document\n\n",
		result.Limits.MaxPages, result.Limits.MaxCharsPerPage, result.Limits.MaxCharsPerDocument)

	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("Directory Contents (%d PDF files found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "Directory Contents: No PDF files found in documents directory\n\n"
	}

	text += "Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	return text
}

// toolResultJSON renders a structured result as a JSON tool response, keeping
// the external contract uniform: errors inside the pipeline are data, not
// protocol failures.
func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting market trend analyzer in stdio mode")
		log.Printf("Documents directory: %s", s.config.DocsDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The stdio transport is the only one wired up; HTTP mode falls back.
	log.Printf("Server mode not yet implemented")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
