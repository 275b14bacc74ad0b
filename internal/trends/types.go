// Package trends implements the market-trend data collection, analysis, and
// summarization tools served to the orchestration layer. The collectors are
// illustrative stand-ins: they return plausible items for a domain keyword
// without any network access.
package trends

// Result status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Item is one collected piece of content. News and social items carry
// Content; research papers carry Title.
type Item struct {
	Source  string `json:"source"`
	Content string `json:"content,omitempty"`
	Title   string `json:"title,omitempty"`
}

// text returns whichever of Content or Title holds the item's text.
func (i Item) text() string {
	if i.Content != "" {
		return i.Content
	}
	return i.Title
}

// SearchResult is the uniform collector result: a status plus the collected
// items, or an error message.
type SearchResult struct {
	Status       string `json:"status"`
	Items        []Item `json:"items,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ComprehensiveSummary counts the sources combined in a comprehensive run.
type ComprehensiveSummary struct {
	TotalNewsArticles int      `json:"total_news_articles"`
	TotalSocialPosts  int      `json:"total_social_posts"`
	SourcesAnalyzed   []string `json:"sources_analyzed"`
}

// ComprehensiveResult combines news and social media collection for a domain.
type ComprehensiveResult struct {
	Status       string               `json:"status"`
	Domain       string               `json:"domain,omitempty"`
	Timestamp    string               `json:"timestamp,omitempty"`
	News         SearchResult         `json:"news_analysis"`
	Social       SearchResult         `json:"social_media_analysis"`
	Summary      ComprehensiveSummary `json:"summary"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// CollectedInputs carries content from multiple collectors into analysis.
// Either the per-source lists are populated, or the embedded comprehensive
// result fields are (the analyzer accepts both shapes).
type CollectedInputs struct {
	News     []Item `json:"news,omitempty"`
	Research []Item `json:"research,omitempty"`
	Social   []Item `json:"social,omitempty"`

	NewsAnalysis   *SearchResult `json:"news_analysis,omitempty"`
	SocialAnalysis *SearchResult `json:"social_media_analysis,omitempty"`
}

// AnalysisResult holds the keywords, topics, and notes extracted from
// collected content.
type AnalysisResult struct {
	Status       string   `json:"status"`
	Keywords     []string `json:"keywords,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	SummaryNotes string   `json:"summary_notes,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// SummaryResult holds the executive summary generated from an analysis.
type SummaryResult struct {
	Status       string `json:"status"`
	Summary      string `json:"summary,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
