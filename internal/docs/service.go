package docs

import (
	"context"
	"fmt"
	"time"
)

// Service handles document analysis operations by orchestrating the
// extraction pipeline components.
type Service struct {
	maxFileSize   int64
	docsDirectory string
	validator     *Validator
	stats         *Stats
}

// NewService creates a new document service.
func NewService(maxFileSize int64, docsDirectory string) (*Service, error) {
	if docsDirectory == "" {
		return nil, fmt.Errorf("docs directory cannot be empty")
	}

	return &Service{
		maxFileSize:   maxFileSize,
		docsDirectory: docsDirectory,
		validator:     NewValidator(maxFileSize),
		stats:         NewStats(maxFileSize),
	}, nil
}

// DocsDirectory returns the configured default documents directory.
func (s *Service) DocsDirectory() string {
	return s.docsDirectory
}

// AnalyzeDirectory runs the extraction pipeline over directory with the
// given limits. Limits travel with the call; nothing is stored between runs.
// An empty directory argument falls back to the configured directory.
func (s *Service) AnalyzeDirectory(ctx context.Context, directory string, limits Limits) (*AnalysisReport, error) {
	if directory == "" {
		directory = s.docsDirectory
	}

	extractor := NewExtractor(s.maxFileSize, limits)
	aggregator := NewAggregator(extractor, limits)

	return aggregator.AnalyzeDirectory(ctx, directory)
}

// ValidateFile checks whether a file is a readable PDF document.
func (s *Service) ValidateFile(path string) (*ValidateFileResult, error) {
	return s.validator.ValidateFile(path)
}

// GetDirectoryStats returns statistics about the documents in a directory.
func (s *Service) GetDirectoryStats(directory string) (*DirectoryStatsResult, error) {
	if directory == "" {
		directory = s.docsDirectory
	}
	return s.stats.GetDirectoryStats(directory)
}

// ServerInfo assembles server information for the orchestration layer,
// including a bounded snapshot of the configured directory's contents.
func (s *Service) ServerInfo(serverName, version string, limits Limits, tools []ToolInfo) *ServerInfoResult {
	contents := []FileInfo{}

	// Scan with a timeout so a slow filesystem cannot hang the tool call.
	resultCh := make(chan []FileInfo, 1)
	go func() {
		files, err := s.stats.ListDocuments(s.docsDirectory)
		if err != nil {
			resultCh <- nil
			return
		}
		resultCh <- files
	}()

	select {
	case files := <-resultCh:
		if files != nil {
			contents = files
		}
	case <-time.After(5 * time.Second):
	}

	return &ServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		DocsDirectory:     s.docsDirectory,
		Limits:            limits,
		MaxFileSize:       s.maxFileSize,
		AvailableTools:    tools,
		DirectoryContents: contents,
	}
}
