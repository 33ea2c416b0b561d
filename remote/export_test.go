package remote

import (
	"context"

	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/katalvlaran/lanetsp/wire"
)

// SetCompute replaces the engine run behind Optimum.
func SetCompute(s *Server, fn func(ctx context.Context, key wire.Key) (tsp.Cost, error)) {
	s.compute = fn
}
