package preflight

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsChecker caches per-host robots.txt verdicts.
type robotsChecker struct {
	cache      map[string]*robotstxt.RobotsData
	mu         sync.RWMutex
	httpClient *http.Client
	userAgent  string
}

func newRobotsChecker(userAgent string, timeout time.Duration) *robotsChecker {
	return &robotsChecker{
		cache: make(map[string]*robotstxt.RobotsData),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// allowed reports whether the URL may be fetched. Unreachable or
// unparsable robots.txt defaults to allowed.
func (r *robotsChecker) allowed(ctx context.Context, target *url.URL) bool {
	data, err := r.robotsData(ctx, target)
	if err != nil {
		return true
	}
	return data.TestAgent(target.Path, r.userAgent)
}

func (r *robotsChecker) robotsData(ctx context.Context, target *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, exists := r.cache[target.Host]
	r.mu.RUnlock()
	if exists {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", target.Scheme, target.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		data, _ := robotstxt.FromStatusAndBytes(404, nil)
		r.store(target.Host, data)
		return data, nil
	}

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.store(target.Host, data)
	return data, nil
}

func (r *robotsChecker) store(host string, data *robotstxt.RobotsData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[host] = data
}
