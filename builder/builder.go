// Package builder: RandomConnected implementation and its options.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstpq/core"
)

// Sentinel errors returned by RandomConnected.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: need at least one vertex")

	// ErrTooFewEdges indicates m < n-1, too few edges to keep n vertices
	// connected.
	ErrTooFewEdges = errors.New("builder: too few edges for a connected graph")

	// ErrTooManyEdges indicates m exceeds n(n-1)/2, the simple-graph
	// capacity.
	ErrTooManyEdges = errors.New("builder: edge count exceeds simple-graph capacity")

	// ErrBadWeightRange indicates an empty or inverted weight range.
	ErrBadWeightRange = errors.New("builder: invalid weight range")
)

// defaultSeed feeds the RNG when the caller supplies neither WithRand nor
// WithSeed, keeping unconfigured builds reproducible.
const defaultSeed int64 = 42

// Default weight range, matching the classic 1..20 textbook setup.
const (
	defaultWeightLo = 1.0
	defaultWeightHi = 20.0
)

// config carries the resolved RandomConnected settings.
type config struct {
	rng      *rand.Rand
	weightLo float64
	weightHi float64
}

// Option configures RandomConnected.
type Option func(*config)

// WithRand returns an Option that injects the random source. The builder
// never reads ambient global randomness; this is the hook for callers who
// share one source across generators.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed returns an Option that injects a fresh deterministic source
// seeded with seed. Shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange returns an Option that sets the half-open weight domain
// [lo, hi) edges are drawn from. Must satisfy 0 < lo < hi; violations
// surface as ErrBadWeightRange from RandomConnected.
func WithWeightRange(lo, hi float64) Option {
	return func(c *config) {
		c.weightLo = lo
		c.weightHi = hi
	}
}

// RandomConnected builds an undirected weighted graph with n vertices
// named "V0".."V<n-1>" and exactly m edges, connected by construction.
//
// Steps:
//  1. Validate n, m and the weight range (fail fast, sentinel errors).
//  2. Add the n vertices in index order.
//  3. Chain V(i-1)—V(i) for i = 1..n-1, guaranteeing connectivity.
//  4. Add m-(n-1) extra edges between uniformly chosen distinct,
//     not-yet-connected vertex pairs.
//
// Determinism: fixed (n, m, options) always yields the same graph; the
// default RNG is seeded with a package constant.
//
// Complexity: O(n + m) expected; the rejection loop in step 4 stays cheap
// while m is below the n(n-1)/2 capacity bound enforced in step 1.
func RandomConnected(n, m int, opts ...Option) (*core.Graph, error) {
	// 1. Resolve options over defaults, then validate.
	cfg := config{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightLo: defaultWeightLo,
		weightHi: defaultWeightHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 {
		return nil, fmt.Errorf("RandomConnected: n=%d: %w", n, ErrTooFewVertices)
	}
	if m < n-1 {
		return nil, fmt.Errorf("RandomConnected: m=%d < n-1=%d: %w", m, n-1, ErrTooFewEdges)
	}
	if capacity := n * (n - 1) / 2; m > capacity {
		return nil, fmt.Errorf("RandomConnected: m=%d > capacity=%d: %w", m, capacity, ErrTooManyEdges)
	}
	if cfg.weightLo <= 0 || cfg.weightHi <= cfg.weightLo {
		return nil, fmt.Errorf("RandomConnected: [%v, %v): %w", cfg.weightLo, cfg.weightHi, ErrBadWeightRange)
	}

	g := core.NewGraph()

	// 2. Vertices in index order, deterministic IDs.
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("RandomConnected: AddVertex(%s): %w", vertexID(i), err)
		}
	}

	// 3. Connectivity chain.
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(vertexID(i-1), vertexID(i), drawWeight(cfg)); err != nil {
			return nil, fmt.Errorf("RandomConnected: chain edge V%d—V%d: %w", i-1, i, err)
		}
	}

	// 4. Extra edges by rejection sampling: reroll loops and already
	//    connected pairs. Termination is guaranteed by the capacity check.
	for added := m - (n - 1); added > 0; {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.GetEdge(vertexID(u), vertexID(v)); err == nil {
			continue
		}
		if _, err := g.AddEdge(vertexID(u), vertexID(v), drawWeight(cfg)); err != nil {
			return nil, fmt.Errorf("RandomConnected: extra edge V%d—V%d: %w", u, v, err)
		}
		added--
	}

	return g, nil
}

// vertexID formats the conventional vertex name for index i.
func vertexID(i int) string { return fmt.Sprintf("V%d", i) }

// drawWeight samples a weight uniformly from [weightLo, weightHi).
func drawWeight(cfg config) float64 {
	return cfg.weightLo + cfg.rng.Float64()*(cfg.weightHi-cfg.weightLo)
}
