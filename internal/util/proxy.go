// Package util holds small helpers shared by the HTTP-facing packages.
package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds the Transport.Proxy function for outbound
// requests. Explicit proxy URLs win over the HTTP_PROXY family of
// environment variables; hosts listed in noProxy (comma separated,
// suffix matched) bypass the proxy entirely.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	var skip []string
	for _, host := range strings.Split(noProxy, ",") {
		if host = strings.TrimSpace(host); host != "" {
			skip = append(skip, host)
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		host := req.URL.Hostname()
		for _, s := range skip {
			if host == s || strings.HasSuffix(host, "."+s) {
				return nil, nil
			}
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
