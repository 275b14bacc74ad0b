package docs

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor produces bounded text from a single document.
type Extractor struct {
	maxFileSize int64
	limits      Limits
}

// NewExtractor creates an extractor with the specified constraints.
func NewExtractor(maxFileSize int64, limits Limits) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		limits:      limits,
	}
}

// ExtractFile extracts cleaned, page-capped text from a PDF file. Pages are
// processed in order up to the page cap; each page is cleaned and cut at the
// per-page character cap before being joined into the combined text. The
// whole-document cap is the Aggregator's responsibility.
func (e *Extractor) ExtractFile(path string) (*ExtractionResult, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := e.validateDocumentFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	defer f.Close()

	return e.extract(r)
}

// extract walks the page sequence with caps applied.
func (e *Extractor) extract(r *pdf.Reader) (*ExtractionResult, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrDocumentUnreadable)
	}

	totalPages := r.NumPage()

	// A zero-page document is a successful, empty extraction.
	if totalPages == 0 {
		return &ExtractionResult{
			Text:           "",
			TotalPages:     0,
			PagesProcessed: 0,
			TextLength:     0,
			Truncated:      false,
		}, nil
	}

	pagesToProcess := totalPages
	if e.limits.MaxPages > 0 && pagesToProcess > e.limits.MaxPages {
		pagesToProcess = e.limits.MaxPages
	}

	var pageTexts []string
	pageCut := false

	for pageNum := 1; pageNum <= pagesToProcess; pageNum++ {
		raw := e.pageText(r, pageNum)
		cleaned := cleanText(raw)
		capped, cut := capText(cleaned, e.limits.MaxCharsPerPage)
		if cut {
			pageCut = true
		}
		if capped != "" {
			pageTexts = append(pageTexts, capped)
		}
	}

	text := strings.Join(pageTexts, " ")

	return &ExtractionResult{
		Text:           text,
		TotalPages:     totalPages,
		PagesProcessed: pagesToProcess,
		TextLength:     len(text),
		Truncated:      pagesToProcess < totalPages || pageCut,
	}, nil
}

// pageText reads the plain text of one page. Unreadable pages yield empty
// text; they still count as processed.
func (e *Extractor) pageText(r *pdf.Reader, pageNum int) (text string) {
	defer func() {
		// The underlying parser panics on some malformed content streams.
		if recover() != nil {
			text = ""
		}
	}()

	page := r.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// validateDocumentFile performs basic validation before parsing.
func (e *Extractor) validateDocumentFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if e.maxFileSize > 0 && fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	return nil
}

// cleanText collapses whitespace runs to single spaces and lowercases the
// result.
func cleanText(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " ")))
}

// capText cuts s at max characters. The boundary is inclusive: text of
// exactly max characters is not cut.
func capText(s string, max int) (string, bool) {
	if max <= 0 || len(s) <= max {
		return s, false
	}
	return s[:max], true
}
