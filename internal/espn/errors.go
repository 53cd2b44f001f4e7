package espn

import "errors"

// Fetch errors surfaced by the provider client. Callers classify with errors.Is.
var (
	// ErrNetwork covers transport failures, timeouts and non-2xx responses.
	ErrNetwork = errors.New("network error talking to provider")
	// ErrParse covers responses whose shape or content is not what we expect,
	// including status strings outside the known set.
	ErrParse = errors.New("unexpected provider response")
	// ErrGameNotFound means the provider no longer serves data for the game id.
	ErrGameNotFound = errors.New("game not found")
)
