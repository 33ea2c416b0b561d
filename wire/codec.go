package wire

import (
	"encoding/binary"
	"fmt"
)

// Marshal encodes m into a fresh datagram.
func Marshal(m Message) ([]byte, error) {
	if d, ok := m.(ScenarioDelivery); ok {
		if want := int(d.Nodes) * int(d.Nodes); len(d.Weights) != want {
			return nil, fmt.Errorf("Marshal: %d weights for %d nodes: %w", len(d.Weights), d.Nodes, ErrBadPayload)
		}
	}

	return m.appendTo(make([]byte, 0, Size(m))), nil
}

// Size returns the encoded length of m.
func Size(m Message) int {
	switch v := m.(type) {
	case ScenarioDelivery:
		return HeaderSize + len(v.Weights)
	case SolveSubmission:
		return submissionSize
	case SolveAck:
		return ackSize
	default:
		return requestSize
	}
}

// Unmarshal decodes one datagram. Trailing bytes beyond the layout are ignored;
// a delivery's weights are copied out of b.
func Unmarshal(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	kind := Kind(b[0])

	var need int
	switch kind {
	case KindScenarioRequest:
		need = requestSize
	case KindScenarioDelivery:
		need = HeaderSize
		if len(b) >= 2 {
			need += int(b[1]) * int(b[1])
		}
	case KindSolveSubmission:
		need = submissionSize
	case KindSolveAck:
		need = ackSize
	default:
		return nil, fmt.Errorf("Unmarshal: 0x%02x: %w", b[0], ErrUnknownKind)
	}
	if len(b) < need {
		return nil, fmt.Errorf("Unmarshal: %s: have %d bytes, want %d: %w", kind, len(b), need, ErrShortMessage)
	}

	var (
		nodes    = b[1]
		scenario = binary.BigEndian.Uint32(b[2:HeaderSize])
	)
	switch kind {
	case KindScenarioRequest:
		return ScenarioRequest{Nodes: nodes, Scenario: scenario}, nil
	case KindScenarioDelivery:
		w := make([]byte, need-HeaderSize)
		copy(w, b[HeaderSize:need])
		return ScenarioDelivery{Nodes: nodes, Scenario: scenario, Weights: w}, nil
	case KindSolveSubmission:
		return SolveSubmission{Nodes: nodes, Scenario: scenario, Distance: binary.BigEndian.Uint32(b[HeaderSize:submissionSize])}, nil
	default:
		return SolveAck{Nodes: nodes, Scenario: scenario, Status: Status(b[HeaderSize])}, nil
	}
}
