// Package preflight performs a polite, best-effort check of the lead's
// website before a submission: robots.txt compliance, reachability,
// and page title. A failed preflight downgrades to a warning on the
// report context; it never blocks the submission itself.
package preflight

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/util"
	"github.com/pkorolev/leadflow/internal/validate"
	"golang.org/x/net/html"
)

// Checker runs website preflights.
type Checker struct {
	httpClient *http.Client
	robots     *robotsChecker
	userAgent  string
	maxBytes   int64
}

// NewChecker creates a Checker from configuration.
func NewChecker(cfg *model.Config) *Checker {
	timeout := cfg.Preflight.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Checker{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    newRobotsChecker(cfg.HTTP.UserAgent, timeout),
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// Check inspects the website. It always returns a SiteCheck; problems
// are recorded in the Warning field rather than returned as errors.
func (c *Checker) Check(ctx context.Context, website string) *model.SiteCheck {
	check := &model.SiteCheck{URL: website, RobotsAllows: true}

	parsed, err := validate.ParseWebsite(website)
	if err != nil {
		check.Warning = fmt.Sprintf("invalid website URL: %v", err)
		return check
	}
	check.URL = parsed.String()

	if !c.robots.allowed(ctx, parsed) {
		check.RobotsAllows = false
		check.Warning = "robots.txt disallows fetching"
		return check
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		check.Warning = fmt.Sprintf("create request: %v", err)
		return check
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		check.Warning = fmt.Sprintf("fetch: %v", err)
		return check
	}
	defer func() { _ = resp.Body.Close() }()

	check.StatusCode = resp.StatusCode
	check.FinalURL = resp.Request.URL.String()
	check.Reachable = resp.StatusCode >= 200 && resp.StatusCode < 400

	maxBytes := c.maxBytes
	if maxBytes <= 0 {
		maxBytes = 2_000_000
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		check.Warning = fmt.Sprintf("read body: %v", err)
		return check
	}

	if title := extractTitle(string(body)); title != "" {
		check.Title = title
	}

	return check
}

// extractTitle returns the text of the first <title> element.
func extractTitle(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return title
}
