package trends

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNews(t *testing.T) {
	result := SearchNews("fintech")

	require.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Items, 10)
	assert.Empty(t, result.ErrorMessage)

	for _, item := range result.Items {
		assert.Equal(t, "NewsAPI", item.Source)
		assert.Contains(t, item.Content, "fintech")
		assert.Empty(t, item.Title)
	}
}

func TestSearchNews_EmptyDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
	}{
		{name: "empty_string", domain: ""},
		{name: "whitespace_only", domain: "   "},
		{name: "tabs_and_newlines", domain: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SearchNews(tt.domain)
			assert.Equal(t, StatusError, result.Status)
			assert.Equal(t, "Domain keyword required.", result.ErrorMessage)
			assert.Empty(t, result.Items)
		})
	}
}

func TestSearchSocialPosts(t *testing.T) {
	result := SearchSocialPosts("robotics")

	require.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Items, 10)

	for _, item := range result.Items {
		assert.Equal(t, "X.com", item.Source)
		assert.Contains(t, item.Content, "robotics")
	}

	// The literal percentage survives template rendering.
	var found bool
	for _, item := range result.Items {
		if strings.Contains(item.Content, "200%") {
			found = true
		}
	}
	assert.True(t, found, "expected a post mentioning 200%% growth")
}

func TestSearchSocialPosts_EmptyDomain(t *testing.T) {
	result := SearchSocialPosts(" ")
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "Domain keyword required.", result.ErrorMessage)
}

func TestSearchResearchPapers(t *testing.T) {
	result := SearchResearchPapers("biotech")

	require.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Items, 10)

	sources := map[string]int{}
	for _, item := range result.Items {
		sources[item.Source]++
		assert.Contains(t, item.Title, "biotech")
		assert.Empty(t, item.Content, "papers carry titles, not content")
	}
	assert.Equal(t, 5, sources["arXiv"])
	assert.Equal(t, 5, sources["SSRN"])
}

func TestSearchResearchPapers_EmptyDomain(t *testing.T) {
	result := SearchResearchPapers("")
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "Domain keyword required.", result.ErrorMessage)
}

func TestCollectors_Deterministic(t *testing.T) {
	first := SearchNews("energy")
	second := SearchNews("energy")
	assert.Equal(t, first, second)
}
