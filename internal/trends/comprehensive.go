package trends

import (
	"strings"
	"time"
)

// ComprehensiveAnalysis collects both news and social media content for a
// domain and combines them into one timestamped result.
func ComprehensiveAnalysis(domain string) ComprehensiveResult {
	if strings.TrimSpace(domain) == "" {
		return ComprehensiveResult{
			Status:       StatusError,
			ErrorMessage: "Domain keyword required for analysis.",
		}
	}

	news := SearchNews(domain)
	social := SearchSocialPosts(domain)

	summary := ComprehensiveSummary{
		SourcesAnalyzed: []string{"NewsAPI", "X.com"},
	}
	if news.Status == StatusSuccess {
		summary.TotalNewsArticles = len(news.Items)
	}
	if social.Status == StatusSuccess {
		summary.TotalSocialPosts = len(social.Items)
	}

	return ComprehensiveResult{
		Status:    StatusSuccess,
		Domain:    domain,
		Timestamp: time.Now().Format(time.RFC3339),
		News:      news,
		Social:    social,
		Summary:   summary,
	}
}
