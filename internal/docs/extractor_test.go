package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildDocumentFixture writes a minimal multi-page PDF whose pages each carry
// one text-showing operation. Object offsets are recorded while assembling so
// the xref table is exact and the file parses with a strict reader.
func buildDocumentFixture(t *testing.T, dir, name string, pageTexts []string) string {
	t.Helper()

	var buf bytes.Buffer
	offsets := make(map[int]int)

	addObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	addObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pageTexts {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		addObj(pageNum, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentNum))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		addObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream",
			len(stream), stream))
	}

	objCount := 3 + 2*len(pageTexts)
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, xrefOffset)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestNewExtractor(t *testing.T) {
	limits := Limits{MaxPages: 3, MaxCharsPerPage: 100, MaxCharsPerDocument: 200}
	e := NewExtractor(1024, limits)

	if e.maxFileSize != 1024 {
		t.Errorf("NewExtractor() maxFileSize = %v, want %v", e.maxFileSize, 1024)
	}
	if e.limits != limits {
		t.Errorf("NewExtractor() limits = %+v, want %+v", e.limits, limits)
	}
}

func TestExtractor_ExtractFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "docs_extractor_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testTxtPath := filepath.Join(tempDir, "notes.txt")
	testDirPath := filepath.Join(tempDir, "subdir")
	largePDFPath := filepath.Join(tempDir, "large.pdf")
	fakePDFPath := filepath.Join(tempDir, "fake.pdf")

	if err := os.WriteFile(testTxtPath, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("Failed to create txt file: %v", err)
	}
	if err := os.Mkdir(testDirPath, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	largeContent := make([]byte, 1024*1024+1)
	if err := os.WriteFile(largePDFPath, largeContent, 0o644); err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}
	if err := os.WriteFile(fakePDFPath, []byte("not a real pdf"), 0o644); err != nil {
		t.Fatalf("Failed to create fake pdf: %v", err)
	}

	extractor := NewExtractor(1024*1024, DefaultLimits())

	tests := []struct {
		name        string
		path        string
		wantErr     bool
		errContains string
	}{
		{
			name:        "empty path",
			path:        "",
			wantErr:     true,
			errContains: "path cannot be empty",
		},
		{
			name:        "non-existent file",
			path:        filepath.Join(tempDir, "missing.pdf"),
			wantErr:     true,
			errContains: "does not exist",
		},
		{
			name:        "directory instead of file",
			path:        testDirPath,
			wantErr:     true,
			errContains: "directory",
		},
		{
			name:        "not a PDF file",
			path:        testTxtPath,
			wantErr:     true,
			errContains: "not a PDF",
		},
		{
			name:        "file too large",
			path:        largePDFPath,
			wantErr:     true,
			errContains: "too large",
		},
		{
			name:        "unparseable PDF content",
			path:        fakePDFPath,
			wantErr:     true,
			errContains: "unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := extractor.ExtractFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractFile() expected error, got result %+v", result)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ExtractFile() error = %v, want containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractFile() unexpected error: %v", err)
			}
		})
	}
}

func TestExtractor_ExtractFile_NoSizeLimit(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "docs_extractor_nolimit_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// With maxFileSize <= 0 the size check is disabled; the parse attempt
	// still fails on the fake content.
	bigPath := filepath.Join(tempDir, "big.pdf")
	if err := os.WriteFile(bigPath, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	extractor := NewExtractor(0, DefaultLimits())
	_, err = extractor.ExtractFile(bigPath)
	if err == nil {
		t.Fatal("ExtractFile() expected parse error")
	}
	if strings.Contains(err.Error(), "too large") {
		t.Errorf("ExtractFile() size limit applied despite being disabled: %v", err)
	}
}

func TestExtractor_ExtractFile_AllPages(t *testing.T) {
	tempDir := t.TempDir()
	path := buildDocumentFixture(t, tempDir, "report.pdf", []string{
		"Page 1 alpha growth",
		"Page 2 beta growth",
		"Page 3 gamma growth",
		"Page 4 delta growth",
	})

	extractor := NewExtractor(1024*1024, Limits{MaxPages: 10, MaxCharsPerPage: 5000, MaxCharsPerDocument: 15000})
	result, err := extractor.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() unexpected error: %v", err)
	}

	if result.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", result.TotalPages)
	}
	if result.PagesProcessed != 4 {
		t.Errorf("PagesProcessed = %d, want 4", result.PagesProcessed)
	}
	if result.Truncated {
		t.Error("Truncated = true, want false when all pages fit")
	}
	if result.TextLength != len(result.Text) {
		t.Errorf("TextLength = %d, want %d", result.TextLength, len(result.Text))
	}
	if result.Text != strings.ToLower(result.Text) {
		t.Errorf("text not lowercased: %q", result.Text)
	}
	for _, want := range []string{"page 1 alpha", "page 2 beta", "page 3 gamma", "page 4 delta"} {
		if !strings.Contains(result.Text, want) {
			t.Errorf("text missing %q: %q", want, result.Text)
		}
	}
}

func TestExtractor_ExtractFile_PageCap(t *testing.T) {
	tempDir := t.TempDir()
	path := buildDocumentFixture(t, tempDir, "report.pdf", []string{
		"Page 1 alpha",
		"Page 2 beta",
		"Page 3 gamma",
		"Page 4 delta",
	})

	extractor := NewExtractor(1024*1024, Limits{MaxPages: 2, MaxCharsPerPage: 5000, MaxCharsPerDocument: 15000})
	result, err := extractor.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() unexpected error: %v", err)
	}

	if result.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", result.TotalPages)
	}
	if result.PagesProcessed != 2 {
		t.Errorf("PagesProcessed = %d, want the page cap 2", result.PagesProcessed)
	}
	if !result.Truncated {
		t.Error("Truncated = false, want true when pages were dropped")
	}
	if !strings.Contains(result.Text, "page 1 alpha") || !strings.Contains(result.Text, "page 2 beta") {
		t.Errorf("text missing capped pages: %q", result.Text)
	}
	for _, absent := range []string{"page 3", "page 4", "gamma", "delta"} {
		if strings.Contains(result.Text, absent) {
			t.Errorf("text contains %q from beyond the page cap: %q", absent, result.Text)
		}
	}
}

func TestExtractor_ExtractFile_PerPageCut(t *testing.T) {
	tempDir := t.TempDir()
	path := buildDocumentFixture(t, tempDir, "report.pdf", []string{
		"Page 1 alpha growth",
		"Page 2 beta growth",
		"Page 3 gamma growth",
		"Page 4 delta growth",
	})

	// Each cleaned page begins "page n ..."; a six-character cut keeps
	// exactly that prefix per page.
	extractor := NewExtractor(1024*1024, Limits{MaxPages: 10, MaxCharsPerPage: 6, MaxCharsPerDocument: 15000})
	result, err := extractor.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() unexpected error: %v", err)
	}

	if result.Text != "page 1 page 2 page 3 page 4" {
		t.Errorf("text = %q, want each page cut to exactly six characters", result.Text)
	}
	if !result.Truncated {
		t.Error("Truncated = false, want true when page text was cut")
	}
	if result.PagesProcessed != 4 {
		t.Errorf("PagesProcessed = %d, want 4 (cut pages still count)", result.PagesProcessed)
	}
}

func TestExtractor_ExtractFile_ExactPageCapNotTruncated(t *testing.T) {
	tempDir := t.TempDir()
	path := buildDocumentFixture(t, tempDir, "report.pdf", []string{"Alpha Beta"})

	// Cleaned page text is exactly ten characters; the boundary is inclusive.
	extractor := NewExtractor(1024*1024, Limits{MaxPages: 10, MaxCharsPerPage: 10, MaxCharsPerDocument: 15000})
	result, err := extractor.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() unexpected error: %v", err)
	}

	if result.Text != "alpha beta" {
		t.Errorf("text = %q, want %q", result.Text, "alpha beta")
	}
	if result.Truncated {
		t.Error("Truncated = true, want false for text at exactly the cap")
	}
}

func TestExtractor_ExtractFile_CleansWhitespaceAndCase(t *testing.T) {
	tempDir := t.TempDir()
	path := buildDocumentFixture(t, tempDir, "report.pdf", []string{"  Mixed   CASE    Report  "})

	extractor := NewExtractor(1024*1024, DefaultLimits())
	result, err := extractor.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() unexpected error: %v", err)
	}

	if result.Text != "mixed case report" {
		t.Errorf("text = %q, want collapsed lowercase %q", result.Text, "mixed case report")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses whitespace runs",
			input: "Market   Trends\n\nQ3\t2025",
			want:  "market trends q3 2025",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n  Report  \t ",
			want:  "report",
		},
		{
			name:  "lowercases",
			input: "AI Sector GROWTH",
			want:  "ai sector growth",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
		{
			name:  "already clean",
			input: "quarterly revenue up",
			want:  "quarterly revenue up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanText(tt.input)
			if got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCapText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		want    string
		wantCut bool
	}{
		{
			name:    "under the cap",
			input:   "short",
			max:     10,
			want:    "short",
			wantCut: false,
		},
		{
			name:    "exactly at the cap is not cut",
			input:   "exactly10!",
			max:     10,
			want:    "exactly10!",
			wantCut: false,
		},
		{
			name:    "one over the cap",
			input:   "exactly10!x",
			max:     10,
			want:    "exactly10!",
			wantCut: true,
		},
		{
			name:    "cut keeps the prefix",
			input:   strings.Repeat("ab", 50),
			max:     7,
			want:    "abababa",
			wantCut: true,
		},
		{
			name:    "zero cap disables the limit",
			input:   "anything goes",
			max:     0,
			want:    "anything goes",
			wantCut: false,
		},
		{
			name:    "negative cap disables the limit",
			input:   "anything goes",
			max:     -1,
			want:    "anything goes",
			wantCut: false,
		},
		{
			name:    "empty input",
			input:   "",
			max:     5,
			want:    "",
			wantCut: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cut := capText(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("capText() text = %q, want %q", got, tt.want)
			}
			if cut != tt.wantCut {
				t.Errorf("capText() cut = %v, want %v", cut, tt.wantCut)
			}
			if cut && len(got) != tt.max {
				t.Errorf("capText() cut text length = %d, want %d", len(got), tt.max)
			}
			if !strings.HasPrefix(tt.input, got) {
				t.Errorf("capText() result %q is not a prefix of input", got)
			}
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.MaxPages != DefaultMaxPages {
		t.Errorf("DefaultLimits() MaxPages = %d, want %d", limits.MaxPages, DefaultMaxPages)
	}
	if limits.MaxCharsPerPage != DefaultMaxCharsPerPage {
		t.Errorf("DefaultLimits() MaxCharsPerPage = %d, want %d", limits.MaxCharsPerPage, DefaultMaxCharsPerPage)
	}
	if limits.MaxCharsPerDocument != DefaultMaxCharsPerDocument {
		t.Errorf("DefaultLimits() MaxCharsPerDocument = %d, want %d", limits.MaxCharsPerDocument, DefaultMaxCharsPerDocument)
	}
}
