package hclust

import "sync"

// Engine runs clustering computations. A single Engine serializes its calls
// behind a mutex (the working matrices are not reentrant) and reuses its two
// n×n scratch buffers across sequential calls, which amortizes the dominant
// allocations; results are identical to a fresh Engine per call. The zero
// value is ready to use.
type Engine struct {
	mu   sync.Mutex
	dist []float64 // pairwise distances, kept intact for the result
	work []float64 // linkage working copy, destroyed by the run
}

// NewEngine returns an Engine with no scratch allocated yet.
func NewEngine() *Engine {
	return &Engine{}
}

var (
	sharedEngine     *Engine
	sharedEngineOnce sync.Once
)

// defaultEngine returns the process-wide Engine behind the package-level
// Cluster function.
func defaultEngine() *Engine {
	sharedEngineOnce.Do(func() {
		sharedEngine = NewEngine()
	})
	return sharedEngine
}

// Cluster performs average-linkage hierarchical clustering on the given data.
// See the package-level [Cluster] for the contract; the only difference is
// which Engine's scratch buffers the run uses.
func (e *Engine) Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateInput(data, &cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return emptyResult(), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	dims := len(data[0])
	flat := make([]float64, n*dims)
	for i, row := range data {
		copy(flat[i*dims:], row)
	}

	cfg.Progress("computing pairwise distances")
	dist := e.scratch(&e.dist, n*n)
	pairwiseDistancesInto(dist, flat, n, dims, cfg.Workers)

	work := e.scratch(&e.work, n*n)
	copy(work, dist)
	merges, heights, err := runLinkage(work, n, cfg.Progress, cfg.Cancelled)
	if err != nil {
		return nil, err
	}

	distances := make([]float32, n*n)
	for i, d := range dist {
		distances[i] = float32(d)
	}

	return &Result{
		Tree:           BuildTree(merges, heights, n, cfg.Labels),
		Order:          LeafOrder(merges, n),
		Distances:      distances,
		Merges:         merges,
		Heights:        heights,
		ClustersGivenK: ClustersGivenK(merges, n),
	}, nil
}

// scratch returns a buffer of exactly size elements, reusing *buf's backing
// array when it is large enough. Contents are whatever the previous run left;
// callers overwrite every element.
func (e *Engine) scratch(buf *[]float64, size int) []float64 {
	if cap(*buf) < size {
		*buf = make([]float64, size)
	}
	*buf = (*buf)[:size]
	return *buf
}

// emptyResult is the n == 0 result: empty everywhere, with the partition
// table holding just its empty sentinel.
func emptyResult() *Result {
	return &Result{
		Order:          []int{},
		Distances:      []float32{},
		Merges:         [][2]int{},
		Heights:        []float64{},
		ClustersGivenK: [][][]int{{}},
	}
}
