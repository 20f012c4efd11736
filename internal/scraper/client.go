package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fugitives/internal/config"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// Client fetches pages through the configured proxy, pacing requests with a
// shared rate limiter.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

func NewClient(cfg config.Config) *Client {
	transport := &http.Transport{}
	if proxy := cfg.ProxyURL(); proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond,
			Transport: transport,
		},
		limiter: NewRateLimiter(time.Duration(cfg.ScrapeDelayMs) * time.Millisecond),
	}
}

// Get fetches a page and returns its body as a string.
func (c *Client) Get(ctx context.Context, pageURL string) (string, error) {
	c.limiter.WaitTurn()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// VerifyProxy hits the verification endpoint through the proxy and returns
// what the endpoint reports, typically the exit IP.
func (c *Client) VerifyProxy(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, c.cfg.ProxyVerifyURL)
	if err != nil {
		return "", fmt.Errorf("proxy verification failed: %w", err)
	}
	return strings.TrimSpace(body), nil
}
