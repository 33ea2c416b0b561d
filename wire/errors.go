package wire

import "errors"

var (
	// ErrEmpty is returned for a zero-length datagram.
	ErrEmpty = errors.New("wire: empty datagram")

	// ErrShortMessage is returned when a datagram is shorter than its kind's layout.
	ErrShortMessage = errors.New("wire: short message")

	// ErrUnknownKind is returned for an unrecognised kind byte.
	ErrUnknownKind = errors.New("wire: unknown message kind")

	// ErrNodesOutOfRange is returned for a node count outside [MinNodes, MaxNodes].
	ErrNodesOutOfRange = errors.New("wire: node count out of range")

	// ErrBadPayload is returned when a delivery's weights do not match its node count
	// or a weight does not fit in one byte.
	ErrBadPayload = errors.New("wire: bad payload")
)
