package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	maxTries        = 3
	initialInterval = 200 * time.Millisecond
)

// versionsResponse is the body served for GET <base>/<group>/<name>.
type versionsResponse struct {
	Versions []string `json:"versions"`
}

// HTTPLister lists versions from a remote JSON endpoint. Transient failures
// are retried with exponential backoff.
type HTTPLister struct {
	baseURL    string
	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

var _ ports.VersionLister = (*HTTPLister)(nil)

// NewHTTPLister creates a lister for the endpoint at baseURL.
func NewHTTPLister(baseURL string, timeout time.Duration) *HTTPLister {
	return newHTTPListerWithClient(baseURL, &http.Client{Timeout: timeout}, func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = initialInterval
		return b
	})
}

// newHTTPListerWithClient creates an HTTPLister with a custom client and backoff (used for testing).
func newHTTPListerWithClient(baseURL string, client *http.Client, newBackOff func() backoff.BackOff) *HTTPLister {
	return &HTTPLister{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		newBackOff: newBackOff,
	}
}

// ListVersions queries the endpoint for module. A 404 means no versions.
func (l *HTTPLister) ListVersions(ctx context.Context, module domain.ModuleID) ([]string, error) {
	versions, err := backoff.Retry(ctx, func() ([]string, error) {
		return l.query(ctx, module)
	}, backoff.WithBackOff(l.newBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		return nil, zerr.With(err, "module", module.String())
	}
	return sortVersions(versions), nil
}

func (l *HTTPLister) query(ctx context.Context, module domain.ModuleID) ([]string, error) {
	endpoint := l.baseURL + "/" + url.PathEscape(module.Group) + "/" + url.PathEscape(module.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, backoff.Permanent(err)
		}
		return nil, zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, zerr.With(domain.ErrRepositoryRequestFailed, "status_code", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(zerr.With(domain.ErrRepositoryRequestFailed, "status_code", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error())
	}

	var parsed versionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, backoff.Permanent(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()))
	}
	return parsed.Versions, nil
}
