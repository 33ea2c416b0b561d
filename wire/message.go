package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/lanetsp/matrix"
)

// Kind identifies a message layout.
type Kind uint8

const (
	KindScenarioRequest  Kind = 0x01
	KindScenarioDelivery Kind = 0x02
	KindSolveSubmission  Kind = 0x03
	KindSolveAck         Kind = 0x04
)

func (k Kind) String() string {
	switch k {
	case KindScenarioRequest:
		return "ScenarioRequest"
	case KindScenarioDelivery:
		return "ScenarioDelivery"
	case KindSolveSubmission:
		return "SolveSubmission"
	case KindSolveAck:
		return "SolveAck"
	default:
		return fmt.Sprintf("Kind(0x%02x)", uint8(k))
	}
}

// Status is the controller's verdict on a submission.
type Status uint8

const (
	StatusIncorrect       Status = 0
	StatusCorrect         Status = 1
	StatusUnknownScenario Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusIncorrect:
		return "incorrect"
	case StatusCorrect:
		return "correct"
	case StatusUnknownScenario:
		return "unknown-scenario"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

const (
	// MinNodes and MaxNodes bound the node count a controller serves.
	MinNodes = 4
	MaxNodes = 20

	// HeaderSize is kind + nodes + scenario.
	HeaderSize = 6

	requestSize    = HeaderSize
	submissionSize = HeaderSize + 4
	ackSize        = HeaderSize + 1

	// MaxWeight is the largest weight a delivery can carry.
	MaxWeight matrix.Weight = 0xFF
)

// CheckNodes validates a node count against [MinNodes, MaxNodes].
func CheckNodes(n int) error {
	if n < MinNodes || n > MaxNodes {
		return fmt.Errorf("nodes=%d not in [%d,%d]: %w", n, MinNodes, MaxNodes, ErrNodesOutOfRange)
	}

	return nil
}

// Key names one scenario instance.
type Key struct {
	Nodes    uint8
	Scenario uint32
}

func (k Key) String() string { return fmt.Sprintf("%d/%d", k.Nodes, k.Scenario) }

// Message is implemented by the four datagram types.
type Message interface {
	Kind() Kind
	Key() Key
	appendTo(b []byte) []byte
}

// ScenarioRequest asks the controller for the matrix of a scenario.
type ScenarioRequest struct {
	Nodes    uint8
	Scenario uint32
}

// ScenarioDelivery carries a scenario's matrix, one byte per cell, row-major.
type ScenarioDelivery struct {
	Nodes    uint8
	Scenario uint32
	Weights  []byte
}

// SolveSubmission reports the optimal tour distance found for a scenario.
type SolveSubmission struct {
	Nodes    uint8
	Scenario uint32
	Distance uint32
}

// SolveAck is the controller's reply to a submission.
type SolveAck struct {
	Nodes    uint8
	Scenario uint32
	Status   Status
}

func (ScenarioRequest) Kind() Kind  { return KindScenarioRequest }
func (ScenarioDelivery) Kind() Kind { return KindScenarioDelivery }
func (SolveSubmission) Kind() Kind  { return KindSolveSubmission }
func (SolveAck) Kind() Kind         { return KindSolveAck }

func (m ScenarioRequest) Key() Key  { return Key{m.Nodes, m.Scenario} }
func (m ScenarioDelivery) Key() Key { return Key{m.Nodes, m.Scenario} }
func (m SolveSubmission) Key() Key  { return Key{m.Nodes, m.Scenario} }
func (m SolveAck) Key() Key         { return Key{m.Nodes, m.Scenario} }

func appendHeader(b []byte, k Kind, key Key) []byte {
	b = append(b, byte(k), key.Nodes)
	return binary.BigEndian.AppendUint32(b, key.Scenario)
}

func (m ScenarioRequest) appendTo(b []byte) []byte {
	return appendHeader(b, m.Kind(), m.Key())
}

func (m ScenarioDelivery) appendTo(b []byte) []byte {
	return append(appendHeader(b, m.Kind(), m.Key()), m.Weights...)
}

func (m SolveSubmission) appendTo(b []byte) []byte {
	return binary.BigEndian.AppendUint32(appendHeader(b, m.Kind(), m.Key()), m.Distance)
}

func (m SolveAck) appendTo(b []byte) []byte {
	return append(appendHeader(b, m.Kind(), m.Key()), byte(m.Status))
}

// NewDelivery packs d for the wire. Every weight must fit in one byte and
// the node count in MaxUint8.
func NewDelivery(scenario uint32, d *matrix.Distance) (ScenarioDelivery, error) {
	n := d.N()
	if n < 1 || n > 0xFF {
		return ScenarioDelivery{}, fmt.Errorf("NewDelivery: n=%d: %w", n, ErrBadPayload)
	}
	flat := d.Flat()
	buf := make([]byte, len(flat))
	for i, w := range flat {
		if w > MaxWeight {
			return ScenarioDelivery{}, fmt.Errorf("NewDelivery: cell %d weight %d > %d: %w", i, w, MaxWeight, ErrBadPayload)
		}
		buf[i] = byte(w)
	}

	return ScenarioDelivery{Nodes: uint8(n), Scenario: scenario, Weights: buf}, nil
}

// Distance unpacks the delivered weights into a matrix.
func (m ScenarioDelivery) Distance() (*matrix.Distance, error) {
	d, err := matrix.FromBytes(int(m.Nodes), m.Weights)
	if err != nil {
		return nil, fmt.Errorf("ScenarioDelivery.Distance: %v: %w", err, ErrBadPayload)
	}

	return d, nil
}
