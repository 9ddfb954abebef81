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

const defaultFactCheckBaseURL = "https://factchecktools.googleapis.com/v1alpha1"

// GoogleFactCheck queries the Google Fact Check Tools claims:search API
type GoogleFactCheck struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleFactCheck creates a Fact Check Tools provider
func NewGoogleFactCheck(apiKey, baseURL string, timeout time.Duration, httpProxy, httpsProxy, noProxy string) *GoogleFactCheck {
	if baseURL == "" {
		baseURL = defaultFactCheckBaseURL
	}
	return &GoogleFactCheck{
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
func (g *GoogleFactCheck) Name() string {
	return "google-factcheck"
}

// BaseURL returns the configured endpoint
func (g *GoogleFactCheck) BaseURL() string {
	return g.baseURL
}

// claimsSearchResponse mirrors the claims:search payload shape
type claimsSearchResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
			ReviewDate    string `json:"reviewDate"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Search queries claims:search and maps each claim review to a provider tuple
func (g *GoogleFactCheck) Search(ctx context.Context, query string) ([]ProviderClaim, error) {
	endpoint := fmt.Sprintf("%s/claims:search?query=%s&key=%s&languageCode=en",
		g.baseURL, url.QueryEscape(query), url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact check search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fact check search: unexpected status %d", resp.StatusCode)
	}

	var payload claimsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fact check response: %w", err)
	}

	var claims []ProviderClaim
	for _, claim := range payload.Claims {
		for _, review := range claim.ClaimReview {
			pc := ProviderClaim{
				ClaimText: claim.Text,
				Publisher: review.Publisher.Name,
				Rating:    review.TextualRating,
				URL:       review.URL,
			}
			if pc.Publisher == "" {
				pc.Publisher = review.Publisher.Site
			}
			if review.ReviewDate != "" {
				if t, err := time.Parse(time.RFC3339, review.ReviewDate); err == nil {
					pc.ReviewDate = &t
				}
			}
			claims = append(claims, pc)
		}
	}
	return claims, nil
}
