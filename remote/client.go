package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/katalvlaran/lanetsp/wire"
)

// Outcome is the result of one scenario exchange.
type Outcome struct {
	Key    wire.Key
	Result tsp.SearchResult
	Status wire.Status
}

// Client solves remote scenarios. Solve calls are serialized.
type Client struct {
	conn    net.Conn
	engine  *tsp.Engine
	opts    options
	limiter *rate.Limiter

	mu  sync.Mutex
	buf []byte
}

// NewClient wraps a connected datagram socket. The engine is used for every
// Solve; the client does not take ownership of it.
func NewClient(conn net.Conn, engine *tsp.Engine, opts ...Option) *Client {
	o := gatherOptions(opts...)

	return &Client{
		conn:    conn,
		engine:  engine,
		opts:    o,
		limiter: rate.NewLimiter(o.limit, o.burst),
		buf:     make([]byte, maxDatagram),
	}
}

// Dial connects a UDP socket to the controller at addr.
func Dial(ctx context.Context, addr string, engine *tsp.Engine, opts ...Option) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf("remote: dial %s: %w", addr, err)
	}

	return NewClient(conn, engine, opts...), nil
}

// Close closes the socket.
func (c *Client) Close() error { return c.conn.Close() }

// Solve requests scenario (nodes, id), finds its optimal tour and submits the
// distance. A controller verdict of incorrect is reported in Outcome.Status,
// not as an error.
func (c *Client) Solve(ctx context.Context, nodes int, id uint32) (Outcome, error) {
	if err := wire.CheckNodes(nodes); err != nil {
		return Outcome{}, fmt.Errorf("Solve: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		key = wire.Key{Nodes: uint8(nodes), Scenario: id}
		log = c.opts.log.WithScenario(nodes, id)
	)

	reply, err := c.exchange(ctx, wire.ScenarioRequest{Nodes: key.Nodes, Scenario: id}, wire.KindScenarioDelivery)
	if err != nil {
		return Outcome{Key: key}, fmt.Errorf("Solve %s: request: %w", key, err)
	}
	delivery, ok := reply.(wire.ScenarioDelivery)
	if !ok {
		return Outcome{Key: key, Status: reply.(wire.SolveAck).Status}, fmt.Errorf("Solve %s: %w", key, ErrUnknownScenario)
	}
	log.DebugContext(ctx, "scenario received", "bytes", len(delivery.Weights))

	d, err := delivery.Distance()
	if err != nil {
		return Outcome{Key: key}, fmt.Errorf("Solve %s: %w", key, err)
	}
	if err = c.engine.Ingest(d); err != nil {
		return Outcome{Key: key}, fmt.Errorf("Solve %s: %w", key, err)
	}
	res, err := c.engine.Run(ctx)
	if err != nil {
		return Outcome{Key: key}, fmt.Errorf("Solve %s: %w", key, err)
	}

	reply, err = c.exchange(ctx, wire.SolveSubmission{Nodes: key.Nodes, Scenario: id, Distance: res.BestCost}, wire.KindSolveAck)
	if err != nil {
		return Outcome{Key: key, Result: res}, fmt.Errorf("Solve %s: submit: %w", key, err)
	}
	ack := reply.(wire.SolveAck)
	log.InfoContext(ctx, "submission acknowledged", "distance", res.BestCost, "status", ack.Status)

	return Outcome{Key: key, Result: res, Status: ack.Status}, nil
}

// exchange sends req and waits for a reply of kind want for the same key,
// retransmitting after each timeout. An unknown-scenario SolveAck for the
// key is accepted in place of any reply.
func (c *Client) exchange(ctx context.Context, req wire.Message, want wire.Kind) (wire.Message, error) {
	out, err := wire.Marshal(req)
	if err != nil {
		return nil, err
	}

	// Unblock a pending read as soon as ctx is done.
	stop := context.AfterFunc(ctx, func() { _ = c.conn.SetReadDeadline(time.Unix(1, 0)) })
	defer stop()

	var attempt int
	for attempt = 0; attempt <= c.opts.retries; attempt++ {
		if err = c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		if attempt > 0 {
			c.opts.log.DebugContext(ctx, "retransmitting", "kind", req.Kind(), "attempt", attempt)
		}
		if _, err = c.conn.Write(out); err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}

		msg, err := c.await(ctx, req.Key(), want, time.Now().Add(c.opts.timeout))
		if err == nil {
			return msg, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s after %d attempts: %w", req.Kind(), attempt, ErrNoReply)
}

// await reads until a matching reply arrives or the deadline passes.
func (c *Client) await(ctx context.Context, key wire.Key, want wire.Kind, deadline time.Time) (wire.Message, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	for {
		n, err := c.conn.Read(c.buf)
		if err != nil {
			return nil, err
		}
		b := c.buf[:n]
		msg, err := wire.Unmarshal(b)
		if err == nil && msg.Key() != key {
			err = fmt.Errorf("%s for %s: %w", msg.Kind(), msg.Key(), ErrUnexpected)
		}
		if err == nil && msg.Kind() != want && !isUnknownScenario(msg) {
			err = fmt.Errorf("%s: %w", msg.Kind(), ErrUnexpected)
		}
		c.opts.metrics.RecordDatagram(kindLabel(b), err)
		if err != nil {
			c.opts.log.LogDrop(ctx, c.conn.RemoteAddr().String(), n, err)
			continue
		}

		return msg, nil
	}
}

func isUnknownScenario(m wire.Message) bool {
	ack, ok := m.(wire.SolveAck)
	return ok && ack.Status == wire.StatusUnknownScenario
}
