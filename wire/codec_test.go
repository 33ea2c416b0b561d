package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/katalvlaran/lanetsp/wire"
)

func TestMarshalLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  wire.Message
		want []byte
	}{
		{
			"request",
			wire.ScenarioRequest{Nodes: 5, Scenario: 0x01020304},
			[]byte{0x01, 5, 0x01, 0x02, 0x03, 0x04},
		},
		{
			"delivery",
			wire.ScenarioDelivery{Nodes: 2, Scenario: 7, Weights: []byte{0, 9, 8, 0}},
			[]byte{0x02, 2, 0, 0, 0, 7, 0, 9, 8, 0},
		},
		{
			"submission",
			wire.SolveSubmission{Nodes: 13, Scenario: 0xAABBCCDD, Distance: 618},
			[]byte{0x03, 13, 0xAA, 0xBB, 0xCC, 0xDD, 0, 0, 0x02, 0x6A},
		},
		{
			"ack",
			wire.SolveAck{Nodes: 4, Scenario: 1, Status: wire.StatusCorrect},
			[]byte{0x04, 4, 0, 0, 0, 1, 1},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := wire.Marshal(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.want, b)
			require.Equal(t, len(tc.want), wire.Size(tc.msg))

			got, err := wire.Unmarshal(b)
			require.NoError(t, err)
			require.Equal(t, tc.msg, got)
			require.Equal(t, tc.msg.Key(), got.Key())
			require.Equal(t, tc.msg.Kind(), got.Kind())
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, wire.ErrEmpty},
		{"unknown kind", []byte{0x09, 4, 0, 0, 0, 1}, wire.ErrUnknownKind},
		{"zero kind", []byte{0x00}, wire.ErrUnknownKind},
		{"short request", []byte{0x01, 4, 0, 0}, wire.ErrShortMessage},
		{"short delivery header", []byte{0x02}, wire.ErrShortMessage},
		{"short delivery matrix", []byte{0x02, 3, 0, 0, 0, 1, 0, 1, 2, 3}, wire.ErrShortMessage},
		{"short submission", []byte{0x03, 4, 0, 0, 0, 1, 0, 0, 1}, wire.ErrShortMessage},
		{"short ack", []byte{0x04, 4, 0, 0, 0, 1}, wire.ErrShortMessage},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := wire.Unmarshal(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	t.Parallel()

	in := []byte{0x02, 2, 0, 0, 0, 3, 0, 1, 1, 0, 0xEE, 0xEE}
	m, err := wire.Unmarshal(in)
	require.NoError(t, err)
	d := m.(wire.ScenarioDelivery)
	require.Equal(t, []byte{0, 1, 1, 0}, d.Weights)

	// Weights are copied out of the input buffer.
	in[7] = 99
	require.Equal(t, byte(1), d.Weights[1])
}

func TestMarshalDeliveryMismatch(t *testing.T) {
	t.Parallel()

	_, err := wire.Marshal(wire.ScenarioDelivery{Nodes: 3, Weights: []byte{1, 2}})
	require.ErrorIs(t, err, wire.ErrBadPayload)
}

func TestDeliveryMatrix(t *testing.T) {
	t.Parallel()

	d, err := matrix.FromRows([][]uint32{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	require.NoError(t, err)

	msg, err := wire.NewDelivery(42, d)
	require.NoError(t, err)
	require.Equal(t, wire.Key{Nodes: 4, Scenario: 42}, msg.Key())

	b, err := wire.Marshal(msg)
	require.NoError(t, err)
	require.Len(t, b, wire.HeaderSize+16)

	got, err := wire.Unmarshal(b)
	require.NoError(t, err)
	back, err := got.(wire.ScenarioDelivery).Distance()
	require.NoError(t, err)
	require.True(t, d.Equal(back))

	require.NoError(t, d.Set(1, 2, 256))
	_, err = wire.NewDelivery(42, d)
	require.ErrorIs(t, err, wire.ErrBadPayload)

	_, err = wire.ScenarioDelivery{Nodes: 0}.Distance()
	require.ErrorIs(t, err, wire.ErrBadPayload)
}

func TestCheckNodes(t *testing.T) {
	t.Parallel()

	for n := wire.MinNodes; n <= wire.MaxNodes; n++ {
		require.NoError(t, wire.CheckNodes(n))
	}
	require.ErrorIs(t, wire.CheckNodes(3), wire.ErrNodesOutOfRange)
	require.ErrorIs(t, wire.CheckNodes(21), wire.ErrNodesOutOfRange)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "SolveAck", wire.KindSolveAck.String())
	require.Equal(t, "Kind(0x7f)", wire.Kind(0x7f).String())
	require.Equal(t, "unknown-scenario", wire.StatusUnknownScenario.String())
	require.Equal(t, "Status(9)", wire.Status(9).String())
	require.Equal(t, "5/12", wire.Key{Nodes: 5, Scenario: 12}.String())
}
