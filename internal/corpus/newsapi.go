package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/veracitylab/veracity/internal/util"
)

const defaultNewsBaseURL = "https://newsapi.org/v2"

// NewsAPI queries the NewsAPI "everything" endpoint
type NewsAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNewsAPI creates a NewsAPI provider
func NewNewsAPI(apiKey, baseURL string, timeout time.Duration, httpProxy, httpsProxy, noProxy string) *NewsAPI {
	if baseURL == "" {
		baseURL = defaultNewsBaseURL
	}
	return &NewsAPI{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpProxy, httpsProxy, noProxy),
			},
		},
	}
}

// Name returns the provider name
func (n *NewsAPI) Name() string {
	return "newsapi"
}

// BaseURL returns the configured endpoint
func (n *NewsAPI) BaseURL() string {
	return n.baseURL
}

type everythingResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search queries recent articles matching the query, sorted by relevance
func (n *NewsAPI) Search(ctx context.Context, query string, from time.Time) ([]ProviderArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", "5")
	params.Set("language", "en")
	params.Set("apiKey", n.apiKey)

	endpoint := fmt.Sprintf("%s/everything?%s", n.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search: unexpected status %d", resp.StatusCode)
	}

	var payload everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	var articles []ProviderArticle
	for _, a := range payload.Articles {
		article := ProviderArticle{
			SourceName: a.Source.Name,
			Title:      a.Title,
			URL:        a.URL,
		}
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			article.PublishedAt = t
		}
		articles = append(articles, article)
	}
	return articles, nil
}
