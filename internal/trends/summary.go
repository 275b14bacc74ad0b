package trends

import (
	"fmt"
	"strings"
)

// topicInsights maps detected themes to the phrasing used in summaries.
var topicInsights = []struct {
	topic   string
	insight string
}{
	{"Technology & Innovation", "significant technological advancement and innovation activity"},
	{"Finance & Investment", "active financial markets and investment opportunities"},
	{"Healthcare & Medical", "developments in healthcare and medical research"},
	{"Business & Industry", "business growth and industrial development"},
	{"Research & Analysis", "ongoing research initiatives and analytical studies"},
	{"Market Trends", "emerging market trends and consumer behavior shifts"},
}

// GenerateSummary builds an executive-level plain-text summary from the
// keywords, topics, and notes of an analysis result.
func GenerateSummary(analysis AnalysisResult) SummaryResult {
	if analysis.Status != StatusSuccess {
		msg := analysis.ErrorMessage
		if msg == "" {
			msg = "Unknown error in analysis"
		}
		return SummaryResult{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Analysis results indicate failure: %s", msg),
		}
	}

	keywords := analysis.Keywords
	topics := analysis.Topics

	if len(keywords) == 0 && len(topics) == 0 {
		return SummaryResult{
			Status:       StatusError,
			ErrorMessage: "No meaningful keywords or topics found in analysis results.",
		}
	}

	var parts []string

	// Opening statement
	switch {
	case len(topics) == 1:
		parts = append(parts, fmt.Sprintf("Executive Summary: Analysis reveals a primary focus on %s.",
			strings.ToLower(topics[0])))
	case len(topics) > 1:
		parts = append(parts, fmt.Sprintf("Executive Summary: Analysis reveals key themes across %d major areas: %s.",
			len(topics), strings.ToLower(strings.Join(topics, ", "))))
	default:
		parts = append(parts, "Executive Summary: Analysis of collected data reveals diverse content patterns.")
	}

	// Key findings
	if len(keywords) >= 3 {
		parts = append(parts, fmt.Sprintf("Key findings center around %s, %s, and %s, "+
			"indicating strong market interest and activity in these areas.",
			keywords[0], keywords[1], keywords[2]))
	} else if len(keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Key findings highlight %s as primary areas of focus.",
			strings.Join(keywords, ", ")))
	}

	// Topic-specific insights
	if insights := insightsFor(topics); len(insights) > 0 {
		if len(insights) == 1 {
			parts = append(parts, fmt.Sprintf("The analysis indicates %s.", insights[0]))
		} else {
			parts = append(parts, fmt.Sprintf("The analysis indicates %s, and %s.",
				strings.Join(insights[:len(insights)-1], ", "), insights[len(insights)-1]))
		}
	}

	// Strategic implications
	if implications := implicationsFor(keywords, topics); len(implications) > 0 {
		parts = append(parts, fmt.Sprintf("Strategic implications suggest %s.", strings.Join(implications, ", ")))
	}

	// Conclusion
	if analysis.SummaryNotes != "" {
		parts = append(parts, fmt.Sprintf("Overall assessment: %s", analysis.SummaryNotes))
	} else {
		parts = append(parts, "The combined analysis provides valuable insights for strategic "+
			"decision-making and market positioning.")
	}

	// Recommendation
	if len(keywords) >= 3 {
		parts = append(parts, fmt.Sprintf("Recommendation: Continue monitoring developments in %s and %s "+
			"for emerging opportunities and competitive intelligence.", keywords[0], keywords[1]))
	}

	return SummaryResult{
		Status:  StatusSuccess,
		Summary: strings.Join(parts, " "),
	}
}

func insightsFor(topics []string) []string {
	present := make(map[string]bool, len(topics))
	for _, t := range topics {
		present[t] = true
	}

	var insights []string
	for _, ti := range topicInsights {
		if present[ti.topic] {
			insights = append(insights, ti.insight)
		}
	}
	return insights
}

func implicationsFor(keywords, topics []string) []string {
	top := keywords
	if len(top) > 5 {
		top = top[:5]
	}
	lowered := make(map[string]bool, len(top))
	for _, k := range top {
		lowered[strings.ToLower(k)] = true
	}

	hasTopic := func(name string) bool {
		for _, t := range topics {
			if t == name {
				return true
			}
		}
		return false
	}

	var implications []string
	if lowered["fintech"] || hasTopic("Finance & Investment") {
		implications = append(implications, "opportunities in financial technology and digital payment solutions")
	}
	if lowered["technology"] || lowered["tech"] || lowered["ai"] || lowered["digital"] {
		implications = append(implications, "potential for technology-driven transformation and automation")
	}
	if lowered["healthcare"] || hasTopic("Healthcare & Medical") {
		implications = append(implications, "growth prospects in healthcare innovation and medical technology")
	}
	return implications
}
