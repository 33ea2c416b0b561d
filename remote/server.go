package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lanetsp/builder"
	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/katalvlaran/lanetsp/wire"
)

// Server answers scenario requests and verifies submissions.
//
// Optimal distances are computed once per scenario and cached; concurrent
// submissions for the same scenario share one engine run. A shared run lives
// until it completes or Serve returns, whichever comes first.
type Server struct {
	conn    net.PacketConn
	opts    options
	limiter *rate.Limiter

	life context.Context
	halt context.CancelFunc

	flight  singleflight.Group
	mu      sync.RWMutex
	optima  map[wire.Key]tsp.Cost
	compute func(ctx context.Context, key wire.Key) (tsp.Cost, error)
}

// NewServer serves on conn. Serve closes conn when it returns.
func NewServer(conn net.PacketConn, opts ...Option) *Server {
	o := gatherOptions(opts...)
	s := &Server{
		conn:    conn,
		opts:    o,
		limiter: rate.NewLimiter(o.limit, o.burst),
		optima:  make(map[wire.Key]tsp.Cost),
	}
	s.life, s.halt = context.WithCancel(context.Background())
	s.compute = s.solve

	return s
}

// Listen binds a UDP socket on addr.
func Listen(ctx context.Context, addr string, opts ...Option) (*Server, error) {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf("remote: listen %s: %w", addr, err)
	}

	return NewServer(conn, opts...), nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr { return s.conn.LocalAddr() }

// Serve handles datagrams until ctx is done. It returns nil after a clean
// shutdown and the socket error otherwise.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = s.conn.Close() })
	defer stop()
	defer s.halt()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)
	s.opts.log.InfoContext(ctx, "controller listening", "addr", s.Addr().String())

	var err error
	for {
		buf := make([]byte, maxDatagram)
		n, from, rerr := s.conn.ReadFrom(buf)
		if rerr != nil {
			if ctx.Err() == nil && !errors.Is(rerr, net.ErrClosed) {
				err = fmt.Errorf("remote: read: %w", rerr)
			}
			break
		}
		if !s.limiter.Allow() {
			s.drop(ctx, from, buf[:n], ErrRateLimited)
			continue
		}
		g.Go(func() error {
			s.handle(gctx, buf[:n], from)
			return nil
		})
	}
	_ = g.Wait()
	_ = s.conn.Close()

	return err
}

// handle decodes one datagram and replies to it.
func (s *Server) handle(ctx context.Context, b []byte, from net.Addr) {
	msg, err := wire.Unmarshal(b)
	if err != nil {
		s.drop(ctx, from, b, err)
		return
	}

	var reply wire.Message
	switch m := msg.(type) {
	case wire.ScenarioRequest:
		reply = s.deliver(ctx, m)
	case wire.SolveSubmission:
		reply = s.verify(ctx, m)
	default:
		s.drop(ctx, from, b, fmt.Errorf("%s: %w", msg.Kind(), ErrUnexpected))
		return
	}
	s.opts.metrics.RecordDatagram(msg.Kind().String(), nil)
	if reply == nil {
		return
	}

	out, err := wire.Marshal(reply)
	if err == nil {
		_, err = s.conn.WriteTo(out, from)
	}
	if err != nil {
		s.opts.log.ErrorContext(ctx, "reply failed", "to", from.String(), "kind", reply.Kind(), "error", err)
	}
}

func (s *Server) drop(ctx context.Context, from net.Addr, b []byte, reason error) {
	s.opts.metrics.RecordDatagram(kindLabel(b), reason)
	s.opts.log.LogDrop(ctx, from.String(), len(b), reason)
}

// deliver answers a ScenarioRequest with the scenario matrix, or with an
// unknown-scenario ack for node counts outside the served range.
func (s *Server) deliver(ctx context.Context, m wire.ScenarioRequest) wire.Message {
	if err := wire.CheckNodes(int(m.Nodes)); err != nil {
		s.opts.log.WarnContext(ctx, "scenario refused", "key", m.Key().String(), "error", err)
		return wire.SolveAck{Nodes: m.Nodes, Scenario: m.Scenario, Status: wire.StatusUnknownScenario}
	}
	sc, err := builder.ScenarioFor(int(m.Nodes), m.Scenario)
	if err != nil {
		s.opts.log.ErrorContext(ctx, "scenario generation failed", "key", m.Key().String(), "error", err)
		return nil
	}
	d, err := sc.Distance()
	if err == nil {
		var out wire.ScenarioDelivery
		if out, err = wire.NewDelivery(m.Scenario, d); err == nil {
			return out
		}
	}
	s.opts.log.ErrorContext(ctx, "scenario encoding failed", "key", m.Key().String(), "error", err)

	return nil
}

// verify compares a submitted distance with the scenario optimum.
func (s *Server) verify(ctx context.Context, m wire.SolveSubmission) wire.Message {
	ack := wire.SolveAck{Nodes: m.Nodes, Scenario: m.Scenario}
	if wire.CheckNodes(int(m.Nodes)) != nil {
		ack.Status = wire.StatusUnknownScenario
		return ack
	}

	best, err := s.Optimum(ctx, m.Key())
	if errors.Is(err, ErrUnknownScenario) || errors.Is(err, tsp.ErrTooManyNodes) {
		s.opts.log.WarnContext(ctx, "submission refused", "key", m.Key().String(), "error", err)
		ack.Status = wire.StatusUnknownScenario
		return ack
	}
	if err != nil {
		s.opts.log.ErrorContext(ctx, "verification failed", "key", m.Key().String(), "error", err)
		return nil
	}
	if m.Distance == best {
		ack.Status = wire.StatusCorrect
	} else {
		ack.Status = wire.StatusIncorrect
	}
	s.opts.log.InfoContext(ctx, "submission verified",
		"key", m.Key().String(),
		"submitted", m.Distance,
		"optimum", best,
		"status", ack.Status.String(),
	)

	return ack
}

// Optimum returns the optimal tour cost of scenario key, running the engine
// on first use. Scenarios above the verify bound fail with ErrUnknownScenario.
//
// Callers asking for the same key share one run. Cancelling ctx abandons the
// wait but not the run, which the remaining callers and the cache still get.
func (s *Server) Optimum(ctx context.Context, key wire.Key) (tsp.Cost, error) {
	if int(key.Nodes) > s.opts.verify {
		return 0, fmt.Errorf("Optimum %s: nodes above %d: %w", key, s.opts.verify, ErrUnknownScenario)
	}
	s.mu.RLock()
	best, ok := s.optima[key]
	s.mu.RUnlock()
	if ok {
		return best, nil
	}

	ch := s.flight.DoChan(key.String(), func() (interface{}, error) {
		wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		defer cancel()
		stop := context.AfterFunc(s.life, cancel)
		defer stop()

		best, err := s.compute(wctx, key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.optima[key] = best
		s.mu.Unlock()

		return best, nil
	})
	select {
	case r := <-ch:
		if r.Err != nil {
			return 0, fmt.Errorf("Optimum %s: %w", key, r.Err)
		}
		return r.Val.(tsp.Cost), nil
	case <-ctx.Done():
		return 0, fmt.Errorf("Optimum %s: %w", key, ctx.Err())
	}
}

// solve runs a fresh engine over the scenario matrix.
func (s *Server) solve(ctx context.Context, key wire.Key) (tsp.Cost, error) {
	sc, err := builder.ScenarioFor(int(key.Nodes), key.Scenario)
	if err != nil {
		return 0, err
	}
	d, err := sc.Distance()
	if err != nil {
		return 0, err
	}
	e := tsp.NewEngine(s.opts.engineOpts...)
	if err = e.Ingest(d); err != nil {
		return 0, err
	}
	res, err := e.Run(ctx)
	if err != nil {
		return 0, err
	}

	return res.BestCost, nil
}
