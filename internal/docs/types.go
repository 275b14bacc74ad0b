package docs

// Default extraction limits. Callers supply Limits explicitly; these values
// mirror the conservative caps used to keep extracted text inside LLM token
// budgets.
const (
	DefaultMaxPages            = 10
	DefaultMaxCharsPerPage     = 5000
	DefaultMaxCharsPerDocument = 15000
)

// Report status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Limits bounds how much text the pipeline extracts from each document.
type Limits struct {
	MaxPages            int `json:"max_pages"`
	MaxCharsPerPage     int `json:"max_chars_per_page"`
	MaxCharsPerDocument int `json:"max_chars_per_document"`
}

// DefaultLimits returns the standard extraction limits.
func DefaultLimits() Limits {
	return Limits{
		MaxPages:            DefaultMaxPages,
		MaxCharsPerPage:     DefaultMaxCharsPerPage,
		MaxCharsPerDocument: DefaultMaxCharsPerDocument,
	}
}

// FileInfo represents a discovered document file.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// ExtractionResult describes the Extractor's effect on one document.
// Text is the cleaned, page-joined content after the per-page cap; the
// whole-document cap is applied later by the Aggregator.
type ExtractionResult struct {
	Text           string `json:"text"`
	TotalPages     int    `json:"total_pages"`
	PagesProcessed int    `json:"pages_processed"`
	TextLength     int    `json:"text_length"`
	Truncated      bool   `json:"truncated"`
}

// DocumentResult is one entry in an AnalysisReport's document sequence.
// A non-empty Error marks a failed document; all other fields are then zero.
type DocumentResult struct {
	FilePath       string `json:"file_path"`
	Text           string `json:"text"`
	TotalPages     int    `json:"total_pages"`
	PagesProcessed int    `json:"pages_processed"`
	TextLength     int    `json:"text_length"`
	Note           string `json:"note,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Failed reports whether this entry records a per-document failure.
func (d DocumentResult) Failed() bool {
	return d.Error != ""
}

// AnalysisReport is the structured result of one Aggregator run over a
// directory. One entry per discovered document, in discovery order.
type AnalysisReport struct {
	Status       string           `json:"status"`
	Documents    []DocumentResult `json:"documents,omitempty"`
	Note         string           `json:"note,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// DirectoryStatsResult summarizes the documents found in a directory.
type DirectoryStatsResult struct {
	Directory        string `json:"directory"`
	TotalFiles       int    `json:"total_files"`
	TotalSize        int64  `json:"total_size"`
	LargestFileSize  int64  `json:"largest_file_size"`
	LargestFileName  string `json:"largest_file_name"`
	SmallestFileSize int64  `json:"smallest_file_size"`
	SmallestFileName string `json:"smallest_file_name"`
	AverageFileSize  int64  `json:"average_file_size"`
}

// ValidateFileResult is the outcome of a document validation check.
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// ServerInfoResult describes the running server for the orchestration layer.
type ServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	DocsDirectory     string     `json:"docs_directory"`
	Limits            Limits     `json:"limits"`
	MaxFileSize       int64      `json:"max_file_size"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	DirectoryContents []FileInfo `json:"directory_contents"`
}

// ToolInfo describes one registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  string `json:"parameters"`
}
