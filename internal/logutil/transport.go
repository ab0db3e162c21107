// Package logutil provides logging for git network transports.
package logutil

import (
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/act3-ai/go-common/pkg/logger"
	"github.com/act3-ai/go-common/pkg/redact"
	"github.com/go-git/go-git/v5/plumbing/transport/client"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

var requestNumber atomic.Int64

var redactedHeaders = []string{
	"Authorization",
	"Cookie",
	"Set-Cookie",
}

// LoggingTransport logs requests and responses to the logger of the
// request's context, at debug level. Bodies are never logged; smart HTTP
// bodies are packfiles.
type LoggingTransport struct {
	// Base performs the requests, [http.DefaultTransport] if nil.
	Base http.RoundTripper
}

// RoundTrip implements [http.RoundTripper].
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger.FromContext(ctx).WithGroup("http").With("requestID", requestNumber.Add(1))

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if !log.Enabled(ctx, slog.LevelDebug) {
		return base.RoundTrip(req) //nolint:wrapcheck
	}

	log.DebugContext(ctx, "HTTP request",
		"method", req.Method,
		"url", redactURL(req.URL),
		"header", redactHeader(req.Header))

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		log.DebugContext(ctx, "HTTP request failed", "error", err, "duration", time.Since(start))
		return resp, err //nolint:wrapcheck
	}
	if resp != nil {
		log.DebugContext(ctx, "HTTP response",
			"status", resp.Status,
			"header", redactHeader(resp.Header),
			"duration", time.Since(start))
	}
	return resp, nil
}

// InstallTransport routes go-git's http and https remotes through a
// [LoggingTransport] over base.
func InstallTransport(base http.RoundTripper) {
	c := githttp.NewClient(&http.Client{Transport: &LoggingTransport{Base: base}})
	client.InstallProtocol("https", c)
	client.InstallProtocol("http", c)
}

// redactHeader returns a copy of hdr with credentials removed.
func redactHeader(hdr http.Header) http.Header {
	out := hdr.Clone()
	if out == nil {
		return http.Header{}
	}
	for _, h := range redactedHeaders {
		values := out.Values(h)
		for i, value := range values {
			values[i] = redact.String(value)
		}
	}
	values := out.Values("Location")
	for i, value := range values {
		u, err := url.Parse(value)
		if err != nil {
			values[i] = ""
			continue
		}
		values[i] = redactURL(u)
	}
	return out
}

// redactURL formats u without user credentials and query string.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	c.User = nil
	c.RawQuery = ""
	return c.String()
}
