package repository

import (
	"net/http"

	"github.com/cenkalti/backoff/v5"
)

// NewHTTPListerWithClient exposes newHTTPListerWithClient without retry delays.
func NewHTTPListerWithClient(baseURL string, client *http.Client) *HTTPLister {
	return newHTTPListerWithClient(baseURL, client, func() backoff.BackOff { return &backoff.ZeroBackOff{} })
}

var CompareVersions = compareVersions
