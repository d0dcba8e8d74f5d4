package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shapestone/shape-csvcursor/internal/retry"
)

// DownloadOptions configures Download.
type DownloadOptions struct {
	// Client performs the requests. Default: http.DefaultClient.
	Client *http.Client
	// Policy decides whether failed attempts are retried.
	// Default: retry.NewDefaultPolicy(retry.WallClock{}).
	Policy *retry.Policy
}

// Download fetches url and spools the body. Transport errors, 5xx and 429
// responses are retried according to opts.Policy; other statuses fail at once.
func Download(ctx context.Context, url string, opts DownloadOptions) (*Stream, error) {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	policy := opts.Policy
	if policy == nil {
		policy = retry.NewDefaultPolicy(retry.WallClock{})
	}

	op := policy.StartOperation()
	for {
		s, retryable, err := fetch(ctx, client, url)
		if err == nil {
			return s, nil
		}
		if !retryable || !op.ShouldRetry(ctx, "download %s: %v", url, err) {
			return nil, unavailable("download", url, err)
		}
	}
}

func fetch(ctx context.Context, client *http.Client, url string) (*Stream, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("unexpected status %s", resp.Status)
	}

	s, err := Spool(resp.Body, url)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	return s, false, nil
}
