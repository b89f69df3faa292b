package hclust

import (
	"fmt"
	"runtime"
)

// Config controls a clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Labels are per-sample display names used for tree leaves. Length must
	// be 0 (every sample defaults to "Sample {i}") or match the data.
	Labels []string

	// Progress, when non-nil, receives coarse status messages during the
	// run ("clustering 500 samples", "450 merges remaining", ...).
	// Fire-and-forget: the engine never waits on it.
	Progress func(msg string)

	// Cancelled, when non-nil, is polled once per merge iteration. It must
	// return within bounded time and never panic. Returning true aborts the
	// run at the next iteration boundary with ErrCancelled.
	Cancelled func() bool

	// Workers controls the number of goroutines for the pairwise distance
	// stage. The agglomeration loop itself is always single-threaded.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains the output of a clustering run.
type Result struct {
	// Tree is the dendrogram root, or nil when the input was empty.
	Tree *ClusterNode

	// Order is the leaf visiting order: a permutation of 0..n-1 in which a
	// dendrogram can be drawn with no crossing branches.
	Order []int

	// Distances is the flat n×n row-major pairwise Euclidean distance
	// matrix, single precision: Distances[i*n+j] is the distance between
	// samples i and j.
	Distances []float32

	// Merges records which two cluster ids combined at each step, in
	// chronological order: samples are ids 0..n-1 and step i creates id n+i.
	Merges [][2]int

	// Heights holds the linkage distance of each merge, parallel to Merges.
	Heights []float64

	// ClustersGivenK holds the flat partition into k clusters at index k-1,
	// with an empty sentinel at index n. See ClustersGivenK.
	ClustersGivenK [][][]int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Progress == nil {
		cfg.Progress = func(string) {}
	}
	if cfg.Cancelled == nil {
		cfg.Cancelled = func() bool { return false }
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateInput checks data and cfg shape and returns a descriptive
// ErrInvalidInput if they are malformed. Vectors of unequal length are
// rejected rather than silently truncated; distances over a shared prefix
// would corrupt results invisibly.
func validateInput(data [][]float64, cfg *Config) error {
	n := len(data)
	if len(cfg.Labels) != 0 && len(cfg.Labels) != n {
		return fmt.Errorf("hclust: %d labels for %d samples: %w", len(cfg.Labels), n, ErrInvalidInput)
	}
	if n == 0 {
		return nil
	}
	dims := len(data[0])
	for i, row := range data {
		if len(row) != dims {
			return fmt.Errorf("hclust: vector %d has length %d, want %d: %w", i, len(row), dims, ErrInvalidInput)
		}
	}
	return nil
}

// Cluster performs average-linkage hierarchical clustering on the given data.
// Each element is a sample (float64 slice); all samples must have the same
// dimensionality. Calls share a lazily-initialized package-level Engine, so
// concurrent callers serialize; use separate [NewEngine] instances for
// concurrent independent clusterings.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	return defaultEngine().Cluster(data, cfg)
}
