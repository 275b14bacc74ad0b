package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Run-level and per-document notes surfaced in reports.
const (
	noteDocumentTruncated = "text was truncated to stay within extraction limits"
	noteRunTruncated      = "one or more documents were truncated to stay within extraction limits"
)

// DocumentExtractor extracts bounded text from a single document file.
type DocumentExtractor interface {
	ExtractFile(path string) (*ExtractionResult, error)
}

// Aggregator discovers documents in a directory, runs the extractor on each
// under isolated failure handling, applies the whole-document character cap,
// and assembles the run report.
type Aggregator struct {
	extractor DocumentExtractor
	limits    Limits
}

// NewAggregator creates an aggregator that uses the given extractor.
func NewAggregator(extractor DocumentExtractor, limits Limits) *Aggregator {
	return &Aggregator{
		extractor: extractor,
		limits:    limits,
	}
}

// AnalyzeDirectory processes every PDF document in directory and returns a
// structured report. Failures below the per-document boundary never escape:
// a document that cannot be parsed becomes an error entry and its siblings
// continue. The returned error is non-nil only when ctx is done.
func (a *Aggregator) AnalyzeDirectory(ctx context.Context, directory string) (*AnalysisReport, error) {
	if directory == "" {
		return &AnalysisReport{
			Status:       StatusError,
			ErrorMessage: "directory cannot be empty",
		}, nil
	}

	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return &AnalysisReport{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("%v: %s", ErrDirectoryNotFound, directory),
		}, nil
	}

	files, err := a.discoverDocuments(directory)
	if err != nil {
		return &AnalysisReport{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("failed to list directory %s: %v", directory, err),
		}, nil
	}

	if len(files) == 0 {
		return &AnalysisReport{
			Status:    StatusSuccess,
			Documents: []DocumentResult{},
			Note:      fmt.Sprintf("no PDF documents found in %s", directory),
		}, nil
	}

	documents := make([]DocumentResult, 0, len(files))
	succeeded := 0
	anyTruncated := false

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := a.extractOne(path)
		if err != nil {
			documents = append(documents, DocumentResult{
				FilePath: path,
				Error:    err.Error(),
			})
			continue
		}

		// Whole-document cap, applied after the per-page caps so the
		// two-stage cut decides which characters survive.
		text, cut := capText(result.Text, a.limits.MaxCharsPerDocument)
		truncated := result.Truncated || cut

		entry := DocumentResult{
			FilePath:       path,
			Text:           text,
			TotalPages:     result.TotalPages,
			PagesProcessed: result.PagesProcessed,
			TextLength:     len(text),
		}
		if truncated {
			entry.Note = noteDocumentTruncated
			anyTruncated = true
		}

		documents = append(documents, entry)
		succeeded++
	}

	report := &AnalysisReport{
		Status:    StatusSuccess,
		Documents: documents,
	}

	if succeeded == 0 {
		report.Status = StatusError
		report.ErrorMessage = fmt.Sprintf("all %d documents failed to process", len(files))
	}
	if anyTruncated {
		report.Note = noteRunTruncated
	}

	return report, nil
}

// discoverDocuments lists the PDF files directly inside directory. The order
// is the directory enumeration order and is stable within one run.
func (a *Aggregator) discoverDocuments(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(directory, entry.Name()))
	}

	return files, nil
}

// extractOne runs the extractor on one document with panic isolation, so a
// malformed file never aborts the batch.
func (a *Aggregator) extractOne(path string) (result *ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: panic while reading %s: %v", ErrDocumentUnreadable, path, r)
		}
	}()

	return a.extractor.ExtractFile(path)
}
