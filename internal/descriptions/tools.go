package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Document Analysis Tools
	AnalyzeLocalDocumentsDescription = `Extract bounded text from every PDF document in a directory for trend analysis.

**When to use:** Need the text content of local documents (reports, whitepapers, filings) as input for trend or keyword analysis.

**Why it's useful:** Handles whole directories in one call, keeps output inside LLM token budgets with page and character caps, and isolates per-document failures so one corrupt file never loses the batch.

**Examples:**
• Analyze industry reports: "Analyze all PDFs in the docs folder for fintech trends"
• Bounded extraction: "Extract at most 5 pages per document from /reports"
• Resilient batch runs: "Process the filings directory even if some files are corrupt"

**Common workflows:**
1. Document Trends: Analyze local documents → Feed text to analyze_collected_results → Generate summary
2. Corpus Review: Analyze directory → Inspect per-document entries → Re-run with larger caps where truncated
3. Mixed-source Analysis: Combine document text with news and social results for a full picture

**Best practices:** Check each entry's note field for truncation; error entries mark unreadable files, not a failed run.`

	ValidateDocumentDescription = `Validate that a file is a readable PDF document before analysis.

**When to use:** Checking a specific file before including it in an analysis run, or diagnosing why a document produced an error entry.

**Why it's useful:** Runs a full parse check beyond the extension and size screening, so corrupt or misnamed files are caught with a concrete reason instead of failing mid-run.

**Examples:**
• Pre-flight check: "Is /reports/q3-filing.pdf a valid PDF?"
• Failure diagnosis: "Why did annual-report.pdf come back as unreadable?"

**Common workflows:**
1. Pre-flight: Validate suspicious files → Analyze the directory → Review entries
2. Triage: Analysis reports an error entry → Validate the file → Replace or repair it

**Best practices:** Validation failures are reported in the result message, not as call errors; scanned documents pass as long as they parse.`

	DirectoryStatsDescription = `Get statistics about the PDF documents in a directory.

**When to use:** Sizing up a document corpus before analysis, or checking what the server can see in a directory.

**Why it's useful:** Reports file counts and size distribution (total, largest, smallest, average) without extracting any text.

**Examples:**
• Corpus sizing: "How many PDFs are in the docs folder and how big are they?"
• Sanity check: "Confirm the reports directory has the files I uploaded"

**Common workflows:**
1. Corpus Review: Directory stats → Analyze documents → Generate summary
2. Capacity Check: Directory stats → Adjust extraction caps → Analyze

**Best practices:** Leave the directory empty to use the server's configured documents directory; only files passing the basic checks are counted.`

	SearchNewsArticlesDescription = `Collect news articles about a domain keyword.

**When to use:** Starting trend analysis for an industry or topic and news coverage is needed as a source.

**Why it's useful:** Returns a uniform {source, content} item list the analysis tools consume directly.

**Examples:**
• Industry scan: "Find news about fintech"
• Topic monitoring: "Collect healthcare articles for this week's digest"

**Common workflows:**
1. Trend Collection: Search news → Combine with social and research results → Analyze
2. Quick Pulse: Search news → Generate summary from headlines

**Best practices:** Use a single domain keyword; combine with search_social_posts and search_research_papers for balanced coverage.`

	SearchSocialPostsDescription = `Collect social media posts about a domain keyword.

**When to use:** Need the social media perspective on an industry or topic alongside news and research.

**Why it's useful:** Surfaces sentiment and discussion that news coverage misses, in the same {source, content} shape as the other collectors.

**Examples:**
• Sentiment check: "What are people posting about fintech?"
• Discussion discovery: "Find social posts about retail automation"

**Common workflows:**
1. Multi-source Collection: Search posts → Merge with news/research → analyze_collected_results
2. Social Pulse: Search posts → Generate summary

**Best practices:** Posts are keyword-driven; broader keywords give broader discussion coverage.`

	SearchResearchPapersDescription = `Collect research paper titles about a domain keyword.

**When to use:** Need the academic/analytical angle on a domain for trend analysis.

**Why it's useful:** Complements news and social content with research publications ({source, title} items).

**Examples:**
• Literature pulse: "Find research papers on healthcare AI"
• Innovation tracking: "What is being published about fintech?"

**Common workflows:**
1. Comprehensive Collection: Search papers → Combine with news/social → Analyze
2. R&D Monitoring: Search papers → Track recurring topics over time

**Best practices:** Paper items carry a title field; the analysis tool reads either content or title.`

	GetComprehensiveAnalysisDescription = `Collect news and social media content for a domain in one combined, timestamped result.

**When to use:** Want both main sources for a domain without issuing separate collection calls.

**Why it's useful:** One call returns news analysis, social media analysis, and per-source counts, ready to feed into analyze_collected_results.

**Examples:**
• One-shot collection: "Get a comprehensive analysis of the fintech domain"
• Dashboard feed: "Collect everything about retail for the weekly report"

**Common workflows:**
1. Full Pipeline: Comprehensive analysis → analyze_collected_results → generate_summary
2. Source Comparison: Compare news vs social counts and content for a domain

**Best practices:** The result can be passed directly to analyze_collected_results as collected input.`

	AnalyzeCollectedResultsDescription = `Extract keywords, topics, and summary notes from collected content.

**When to use:** After collecting items from news, research, social media, or local documents.

**Why it's useful:** Turns raw item lists into ranked keywords and detected themes that downstream summaries build on.

**Examples:**
• Keyword extraction: "Analyze the collected fintech items for recurring terms"
• Theme detection: "Which themes dominate this week's collection?"

**Common workflows:**
1. Standard Pipeline: Collect → Analyze → Summarize
2. Theme Tracking: Analyze weekly collections → Compare detected topics over time

**Best practices:** Pass the collected content as JSON with news/research/social arrays, or pass a get_comprehensive_analysis result unchanged.`

	GenerateSummaryDescription = `Generate an executive-level plain-text summary from analysis results.

**When to use:** Final step of a trend analysis run, turning keywords and topics into a readable brief.

**Why it's useful:** Produces a structured executive summary with findings, topic insights, strategic implications, and a monitoring recommendation.

**Examples:**
• Executive brief: "Summarize the fintech analysis for leadership"
• Report section: "Turn this keyword analysis into prose"

**Common workflows:**
1. Standard Pipeline: Collect → Analyze → Generate summary
2. Periodic Reporting: Re-run the pipeline per domain → Compile summaries

**Best practices:** Requires a successful analysis result (keywords/topics present); pass the analyze_collected_results output as JSON.`

	GetWeatherDescription = `Get the current weather report for a supported city.

**When to use:** The conversation needs a quick weather lookup for a known city.

**Why it's useful:** Deterministic canned reports for supported cities, with a clear error for unsupported ones.

**Best practices:** Supported cities include New York, London, and Tokyo.`

	GetCurrentTimeDescription = `Get the current time in a supported city.

**When to use:** The conversation needs the local time for a known city.

**Why it's useful:** Resolves the city to its IANA time zone and formats the current local time.

**Best practices:** Supported cities include New York, London, and Tokyo.`

	TrendServerInfoDescription = `Get server status, configured limits, available tools, and directory contents.

**When to use:** Starting a session, troubleshooting missing documents, or checking extraction caps.

**Why it's useful:** One call shows the docs directory and its PDF files, the active extraction limits, and every registered tool.

**Common workflows:**
1. Session Startup: Check server info → Verify docs directory → Plan collection and analysis
2. Debugging: Review directory contents → Confirm files are discoverable → Re-run analysis

**Best practices:** Run at the start of sessions; the directory snapshot is bounded, large directories may be listed partially.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"analyze_local_documents":    AnalyzeLocalDocumentsDescription,
	"validate_document":          ValidateDocumentDescription,
	"directory_stats":            DirectoryStatsDescription,
	"search_news_articles":       SearchNewsArticlesDescription,
	"search_social_posts":        SearchSocialPostsDescription,
	"search_research_papers":     SearchResearchPapersDescription,
	"get_comprehensive_analysis": GetComprehensiveAnalysisDescription,
	"analyze_collected_results":  AnalyzeCollectedResultsDescription,
	"generate_summary":           GenerateSummaryDescription,
	"get_weather":                GetWeatherDescription,
	"get_current_time":           GetCurrentTimeDescription,
	"trend_server_info":          TrendServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
