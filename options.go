package zdd

import "time"

// Config holds construction parameters for Build. All fields but the
// shared table are exported to allow inspection after the fact.
type Config struct {
	// NodeLimit caps the number of nodes the table backing a single
	// construction may hold. 0 means no limit.
	NodeLimit int

	// Timeout bounds a single construction call. 0 means no timeout.
	Timeout time.Duration

	// table, when non-nil, is used in place of a freshly allocated
	// NodeTable during top-down construction, letting callers amortise
	// node creation across several Build calls. The caller is then
	// responsible for not building two ZDDs concurrently against the same
	// table from separate goroutines without external synchronisation
	// beyond the table's own mutex.
	table *NodeTable
}

// Option configures Build via the functional options pattern.
type Option func(*Config)

// WithNodeLimit caps the number of nodes a construction's table may hold.
// Exceeding it aborts construction with ErrNodeLimit rather than returning
// a silently truncated diagram.
func WithNodeLimit(n int) Option {
	return func(c *Config) {
		c.NodeLimit = n
	}
}

// WithTimeout bounds construction to the given duration. Exceeding it
// aborts with context.DeadlineExceeded.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithSharedTable directs the top-down construction pass to add nodes to
// an existing NodeTable instead of allocating a fresh one, so repeated
// Build calls reuse each other's identical (level, lo, hi) subtrees rather
// than rebuilding them. Build always reduces into a dedicated table before
// returning, so the resulting Diagram never ends up pointing at shared
// storage itself; this only amortises construction work across calls.
// Construction against a shared table must be serialised by the caller:
// the table's internal mutex only protects its own bookkeeping, not
// cross-call ordering.
func WithSharedTable(t *NodeTable) Option {
	return func(c *Config) {
		c.table = t
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
