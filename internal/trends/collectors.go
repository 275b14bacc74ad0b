package trends

import (
	"fmt"
	"strings"
)

const errDomainRequired = "Domain keyword required."

// SearchNews returns news articles about a domain keyword. This is a
// stand-in for a real NewsAPI client; the items are generated locally.
func SearchNews(domain string) SearchResult {
	if strings.TrimSpace(domain) == "" {
		return SearchResult{Status: StatusError, ErrorMessage: errDomainRequired}
	}

	templates := []string{
		"Sample headline about %s #1",
		"Sample headline about %s #2",
		"Breaking: Major %s company announces breakthrough innovation",
		"Industry experts predict significant growth in %s sector",
		"New regulations could impact %s market dynamics",
		"Global %s market reaches record high this quarter",
		"Startup disrupts traditional %s industry with AI technology",
		"Investment surge in %s companies signals market confidence",
		"Research reveals consumer trends shifting toward %s solutions",
		"International summit addresses future of %s innovation",
	}

	return SearchResult{
		Status: StatusSuccess,
		Items:  renderItems("NewsAPI", domain, templates),
	}
}

// SearchSocialPosts returns social media posts about a domain keyword.
// Stand-in for an X.com API client.
func SearchSocialPosts(domain string) SearchResult {
	if strings.TrimSpace(domain) == "" {
		return SearchResult{Status: StatusError, ErrorMessage: errDomainRequired}
	}

	templates := []string{
		"Latest trending post about %s #1",
		"Latest trending post about %s #2",
		"Breaking news in %s industry today! #innovation",
		"New developments in %s are changing the game",
		"Just discovered an amazing %s startup",
		"Thread: Why %s is the future of technology (1/5)",
		"Market analysis shows %s growing 200%% this year",
		"Investors are bullish on %s companies #investing",
		"Conference highlights: The state of %s in 2025",
		"Hot take: %s will dominate the next decade #prediction",
	}

	return SearchResult{
		Status: StatusSuccess,
		Items:  renderItems("X.com", domain, templates),
	}
}

// SearchResearchPapers returns research paper titles about a domain keyword.
// Stand-in for arXiv/SSRN search clients.
func SearchResearchPapers(domain string) SearchResult {
	if strings.TrimSpace(domain) == "" {
		return SearchResult{Status: StatusError, ErrorMessage: errDomainRequired}
	}

	papers := []struct {
		source, title string
	}{
		{"arXiv", "Sample research paper about %s #1"},
		{"SSRN", "Sample research paper about %s #2"},
		{"arXiv", "Deep Learning Applications in %s: A Comprehensive Review"},
		{"SSRN", "Market Dynamics and Innovation Patterns in the %s Industry"},
		{"arXiv", "Machine Learning Methods for %s Optimization and Analysis"},
		{"SSRN", "Economic Impact of %s Technologies on Global Markets"},
		{"arXiv", "Algorithmic Approaches to %s Problem Solving"},
		{"SSRN", "Investment Trends and Risk Assessment in %s Sector"},
		{"arXiv", "Statistical Models for %s Data Processing and Prediction"},
		{"SSRN", "Regulatory Framework and Policy Implications for %s Development"},
	}

	items := make([]Item, 0, len(papers))
	for _, p := range papers {
		items = append(items, Item{
			Source: p.source,
			Title:  fmt.Sprintf(p.title, domain),
		})
	}

	return SearchResult{
		Status: StatusSuccess,
		Items:  items,
	}
}

func renderItems(source, domain string, templates []string) []Item {
	items := make([]Item, 0, len(templates))
	for _, tmpl := range templates {
		items = append(items, Item{
			Source:  source,
			Content: fmt.Sprintf(tmpl, domain),
		})
	}
	return items
}
