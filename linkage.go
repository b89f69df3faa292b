package hclust

import (
	"fmt"
	"log"
	"math"
)

// AverageLinkage agglomerates n singleton clusters into one using unweighted
// average linkage (UPGMA) with the Lance–Williams update, scanning the dense
// matrix for the closest pair at every step (O(n³) time, O(n²) memory).
//
// distMatrix is flat []float64 of length n×n in row-major order and is not
// modified. Cluster IDs follow the scipy linkage convention: samples are
// 0..n-1 and the cluster created by merge step i is n+i. Returns n-1 merges
// in chronological order with their linkage distances as a parallel heights
// slice.
//
// progress (may be nil) receives coarse status messages. cancelled (may be
// nil) is polled once per merge iteration; when it reports true the run stops
// at that iteration boundary and returns ErrCancelled with no partial result.
func AverageLinkage(distMatrix []float64, n int, progress func(string), cancelled func() bool) ([][2]int, []float64, error) {
	work := make([]float64, len(distMatrix))
	copy(work, distMatrix)
	return runLinkage(work, n, orNoopProgress(progress), orNeverCancelled(cancelled))
}

func orNoopProgress(progress func(string)) func(string) {
	if progress != nil {
		return progress
	}
	return func(string) {}
}

func orNeverCancelled(cancelled func() bool) func() bool {
	if cancelled != nil {
		return cancelled
	}
	return func() bool { return false }
}

// runLinkage is the agglomeration loop. It owns and destroys work (a flat
// n×n matrix holding current inter-cluster distances) and runs as one
// synchronous unit on the calling goroutine; the cancelled poll at the top of
// each iteration is the only interruption point.
func runLinkage(work []float64, n int, progress func(string), cancelled func() bool) ([][2]int, []float64, error) {
	merges := make([][2]int, 0, max(n-1, 0))
	heights := make([]float64, 0, max(n-1, 0))
	if n <= 1 {
		return merges, heights, nil
	}

	// ids maps matrix slot to the id of the active cluster stored there;
	// -1 marks a retired slot. A merged cluster reuses its first parent's
	// slot, so the matrix never grows.
	ids := make([]int, n)
	sizes := make([]int, n)
	for i := range ids {
		ids[i] = i
		sizes[i] = 1
	}

	stride := (n - 1) / 10
	if stride < 1 {
		stride = 1
	}
	progress(fmt.Sprintf("clustering %d samples", n))

	nonFinite := false

	for step := 0; step < n-1; step++ {
		if cancelled() {
			return nil, nil, ErrCancelled
		}
		if step%stride == 0 {
			progress(fmt.Sprintf("%d merges remaining", n-1-step))
		}

		// Find the closest pair of distinct active clusters. Ties break to
		// the lowest pair of cluster ids so repeated runs are reproducible.
		sa, sb := -1, -1
		bestA, bestB := -1, -1
		best := math.Inf(1)
		for si := 0; si < n; si++ {
			if ids[si] < 0 {
				continue
			}
			for sj := si + 1; sj < n; sj++ {
				if ids[sj] < 0 {
					continue
				}
				d := work[si*n+sj]
				ia, ib := ids[si], ids[sj]
				if ia > ib {
					ia, ib = ib, ia
				}
				better := sa < 0 || d < best
				if !better && d == best && (ia < bestA || (ia == bestA && ib < bestB)) {
					better = true
				}
				if better {
					sa, sb = si, sj
					best = d
					bestA, bestB = ia, ib
				}
			}
		}
		if sa < 0 {
			return nil, nil, fmt.Errorf("hclust: no active pair at merge step %d of %d: %w", step, n-1, ErrEngineFailure)
		}

		if !isFinite(best) {
			nonFinite = true
		}
		merges = append(merges, [2]int{bestA, bestB})
		heights = append(heights, best)

		// Lance–Williams average linkage: the new cluster's distance to each
		// remaining cluster is the size-weighted mean of its parents'.
		wa := float64(sizes[sa])
		wb := float64(sizes[sb])
		for sk := 0; sk < n; sk++ {
			if ids[sk] < 0 || sk == sa || sk == sb {
				continue
			}
			d := (wa*work[sa*n+sk] + wb*work[sb*n+sk]) / (wa + wb)
			work[sa*n+sk] = d
			work[sk*n+sa] = d
		}

		ids[sa] = n + step
		sizes[sa] += sizes[sb]
		ids[sb] = -1
	}

	if nonFinite {
		log.Printf("hclust: merge height(s) are NaN or Inf (non-finite input distances)")
	}
	progress("clustering complete")

	return merges, heights, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
