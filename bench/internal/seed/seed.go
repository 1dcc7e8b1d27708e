package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL            string
	Count              int
	Workers            int
	RateLimitBypass    string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type shortenRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type shortenResponse struct {
	Slug string `json:"slug"`
}

const bypassHeader = "X-Rate-Limit-Bypass"

// Run creates cfg.Count links through POST /shorten and returns their slugs.
func Run(ctx context.Context, cfg *Config) ([]string, error) {
	workers := max(1, cfg.Workers)
	fmt.Printf("Seeding %d links (workers: %d)...\n", cfg.Count, workers)

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	slugs := make([]string, cfg.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Count {
		g.Go(func() error {
			slug, err := shorten(gctx, client, cfg, i)
			if err != nil {
				return fmt.Errorf("failed to seed link %d: %w", i, err)
			}
			slugs[i] = slug
			if done := progress.Add(1); done%500 == 0 || int(done) == cfg.Count {
				fmt.Printf("\rProgress: %d/%d", done, cfg.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d slugs\n", len(slugs))
	return slugs, nil
}

func shorten(ctx context.Context, client *http.Client, cfg *Config, i int) (string, error) {
	body, err := json.Marshal(shortenRequest{
		Name: fmt.Sprintf("seed %d", i),
		URL:  fmt.Sprintf("https://example.com/seed/%d", i),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/shorten", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.RateLimitBypass != "" {
		req.Header.Set(bypassHeader, cfg.RateLimitBypass)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Slug, nil
}
