// Package common defines shared constants and sentinel errors used across
// the storyline client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrUnauthenticated means an operation requiring a bearer credential
	// was attempted without one, or the server rejected the credential.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNetworkUnavailable covers transport failures and timeouts. Reads
	// recover from it by falling back to the local cache, story submission
	// by falling back to a local draft.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrRemoteRejected means the server answered but reported failure,
	// either via a non-2xx status or an error flag in the response body.
	ErrRemoteRejected = errors.New("rejected by server")

	// ErrStorageUnavailable means the local database could not complete a
	// write. Reads degrade to empty results instead of returning this.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrValidationFailed covers malformed input: empty description,
	// missing or oversized photo, or a coordinate pair with one half missing.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound is the repository-level miss.
	ErrNotFound = errors.New("not found")
)
