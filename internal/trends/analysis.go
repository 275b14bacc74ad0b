package trends

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const topKeywordCount = 10

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// stopwords filtered out of keyword extraction. Includes a few terms that
// dominate the collectors' templates but carry no signal.
var stopwords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true,
	"from": true, "about": true, "into": true, "through": true, "during": true,
	"before": true, "after": true, "above": true, "below": true, "between": true,
	"among": true, "this": true, "that": true, "these": true, "those": true,
	"myself": true, "our": true, "ours": true, "ourselves": true, "you": true,
	"your": true, "yours": true, "yourself": true, "yourselves": true,
	"him": true, "his": true, "himself": true, "she": true, "her": true,
	"hers": true, "herself": true, "its": true, "itself": true, "they": true,
	"them": true, "their": true, "theirs": true, "themselves": true,
	"what": true, "which": true, "who": true, "whom": true, "are": true,
	"was": true, "were": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "having": true, "does": true, "did": true,
	"doing": true, "will": true, "would": true, "should": true, "could": true,
	"can": true, "may": true, "might": true, "must": true, "shall": true,
	"sample": true, "latest": true, "new": true, "today": true, "news": true,
}

// themePattern maps a business/technology theme to its indicator keywords.
// Order matters: it decides the order themes appear in results.
type themePattern struct {
	name     string
	keywords []string
}

var themePatterns = []themePattern{
	{"Technology & Innovation", []string{
		"technology", "innovation", "tech", "ai", "artificial", "intelligence",
		"machine", "learning", "digital", "algorithm",
	}},
	{"Finance & Investment", []string{
		"finance", "fintech", "investment", "money", "financial", "banking",
		"payment", "market", "economic", "economy",
	}},
	{"Healthcare & Medical", []string{
		"healthcare", "health", "medical", "medicine", "patient", "treatment",
		"clinical", "pharmaceutical",
	}},
	{"Business & Industry", []string{
		"business", "industry", "company", "corporate", "startup", "enterprise",
		"commercial", "growth", "development",
	}},
	{"Research & Analysis", []string{
		"research", "analysis", "study", "data", "findings", "report", "paper",
		"academic", "scientific",
	}},
	{"Market Trends", []string{
		"trend", "trending", "market", "growth", "increase", "sector",
		"industry", "demand", "consumer",
	}},
}

// AnalyzeCollected extracts keywords, topics, and summary notes from content
// collected across news, research, and social media sources. It also accepts
// a ComprehensiveAnalysis result embedded in the inputs.
func AnalyzeCollected(inputs CollectedInputs) AnalysisResult {
	texts, total := collectTexts(inputs)

	if total == 0 {
		return AnalysisResult{
			Status: StatusError,
			ErrorMessage: "No valid content found in inputs. Expected 'news', 'research', and 'social' " +
				"content arrays, or a comprehensive analysis result.",
		}
	}

	combined := strings.ToLower(strings.Join(texts, " "))
	filtered := filterWords(wordPattern.FindAllString(combined, -1))

	keywords := topKeywords(filtered, topKeywordCount)
	topics := detectTopics(filtered)

	var notes string
	if len(topics) > 0 {
		dominant := topics
		if len(dominant) > 3 {
			dominant = dominant[:3]
		}
		notes = fmt.Sprintf("Analysis of %d items reveals dominant themes in %s. ",
			total, strings.Join(dominant, ", "))
		top := keywords
		if len(top) > 5 {
			top = top[:5]
		}
		notes += fmt.Sprintf("Key recurring terms include %s.", strings.Join(top, ", "))
	} else {
		notes = fmt.Sprintf("Analysis of %d items shows diverse content without clear dominant themes.", total)
	}

	return AnalysisResult{
		Status:       StatusSuccess,
		Keywords:     keywords,
		Topics:       topics,
		SummaryNotes: notes,
	}
}

// collectTexts gathers item texts from the per-source lists, falling back to
// an embedded comprehensive result when the lists are empty.
func collectTexts(inputs CollectedInputs) ([]string, int) {
	var texts []string

	for _, list := range [][]Item{inputs.News, inputs.Research, inputs.Social} {
		for _, item := range list {
			if t := item.text(); t != "" {
				texts = append(texts, t)
			}
		}
	}

	if len(texts) == 0 {
		for _, result := range []*SearchResult{inputs.NewsAnalysis, inputs.SocialAnalysis} {
			if result == nil || result.Status != StatusSuccess {
				continue
			}
			for _, item := range result.Items {
				if t := item.text(); t != "" {
					texts = append(texts, t)
				}
			}
		}
	}

	return texts, len(texts)
}

// filterWords removes stopwords and words shorter than three characters.
func filterWords(words []string) []string {
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 2 && !stopwords[w] {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// topKeywords returns the n most frequent words, most frequent first, with
// alphabetical tie-breaking for deterministic output.
func topKeywords(words []string, n int) []string {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	unique := make([]string, 0, len(counts))
	for w := range counts {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return unique[i] < unique[j]
	})

	if len(unique) > n {
		unique = unique[:n]
	}
	return unique
}

// detectTopics returns the themes whose indicator keywords appear in the
// filtered word list, in the fixed theme order.
func detectTopics(words []string) []string {
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[w] = true
	}

	var topics []string
	for _, theme := range themePatterns {
		for _, kw := range theme.keywords {
			if present[kw] {
				topics = append(topics, theme.name)
				break
			}
		}
	}
	return topics
}
