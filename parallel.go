package hclust

import "sync"

// ComputePairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. data is flat row-major with n rows and dims columns.
// numWorkers controls the degree of parallelism; if <= 1, it falls back to
// single-threaded ComputePairwiseDistances.
//
// The result is bitwise identical to ComputePairwiseDistances: a flat
// []float64 of length n×n in row-major order.
func ComputePairwiseDistancesParallel(data []float64, n, dims, numWorkers int) []float64 {
	result := make([]float64, n*n)
	pairwiseDistancesInto(result, data, n, dims, numWorkers)
	return result
}

// pairwiseDistancesInto fills dst, splitting source rows across numWorkers
// goroutines. Each worker handles a contiguous range of rows and computes
// dist(i,j) for all j > i in that range; since row ranges don't overlap, no
// synchronization is needed for writes.
func pairwiseDistancesInto(dst, data []float64, n, dims, numWorkers int) {
	if numWorkers <= 1 || n <= 1 {
		pairwiseDistancesRange(dst, data, n, dims, 0, n)
		return
	}

	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			pairwiseDistancesRange(dst, data, n, dims, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}
