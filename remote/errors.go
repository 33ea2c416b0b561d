package remote

import "errors"

var (
	// ErrNoReply is returned when every attempt timed out.
	ErrNoReply = errors.New("remote: no reply")

	// ErrUnknownScenario is returned when the controller does not serve the
	// requested scenario.
	ErrUnknownScenario = errors.New("remote: unknown scenario")

	// ErrRateLimited is the drop reason for datagrams over the server's rate.
	ErrRateLimited = errors.New("remote: rate limited")

	// ErrUnexpected is the drop reason for well-formed datagrams of the wrong
	// kind or for another scenario.
	ErrUnexpected = errors.New("remote: unexpected message")
)
