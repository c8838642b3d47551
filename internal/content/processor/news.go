package processor

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"social-manager/internal/observability"
)

const (
	DefaultNewsBaseURL = "https://news.google.com/rss/search"
	defaultNewsLimit   = 5
	maxNewsBodyBytes   = 2 << 20
)

type NewsArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	Source  string `xml:"source"`
	PubDate string `xml:"pubDate"`
}

// NewsScanner reads headlines from the Google News RSS search feed.
type NewsScanner struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewNewsScanner returns a scanner against baseURL, or the public feed when empty.
func NewNewsScanner(baseURL string, logger *observability.Logger) *NewsScanner {
	if baseURL == "" {
		baseURL = DefaultNewsBaseURL
	}
	return &NewsScanner{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Fetch returns up to limit articles matching keywords and area. A blank query returns nothing
// without touching the network.
func (s *NewsScanner) Fetch(ctx context.Context, keywords, area string, limit int) ([]NewsArticle, error) {
	query := joinNonEmpty(strings.TrimSpace(keywords), strings.TrimSpace(area))
	if query == "" {
		return []NewsArticle{}, nil
	}
	if limit <= 0 {
		limit = defaultNewsLimit
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "news_query", Value: query})

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch news feed", err)
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("news feed returned status %d", resp.StatusCode)
		s.logger.Error(ctx, "news feed request failed", err)
		return nil, err
	}

	var feed rssFeed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxNewsBodyBytes)).Decode(&feed); err != nil {
		s.logger.Error(ctx, "failed to parse news feed", err)
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	articles := make([]NewsArticle, 0, min(limit, len(feed.Items)))
	for _, item := range feed.Items {
		if len(articles) == limit {
			break
		}
		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = "Google News"
		}
		articles = append(articles, NewsArticle{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Source:      source,
			PublishedAt: strings.TrimSpace(item.PubDate),
		})
	}

	return articles, nil
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
