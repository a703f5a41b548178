// Package netx holds small network helpers shared by the client services.
package netx

import (
	"context"
	"net/http"
	"time"
)

// ProbeTimeout bounds a single reachability probe. A probe that has not
// answered within this window counts as offline.
const ProbeTimeout = 2 * time.Second

// IsOnline reports whether the API host answers an HTTP request right now.
// Any HTTP response, including an error status, counts as reachable; only
// transport failures and timeouts count as offline. The result is a hint,
// not a guarantee: callers must still handle failure of the real request
// by falling back to local storage.
func IsOnline(ctx context.Context, baseURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return true
}
