package hclust

import "gonum.org/v1/gonum/floats"

// ComputePairwiseDistances computes the full n×n Euclidean distance matrix.
// data is flat row-major with n rows and dims columns.
// Returns a flat []float64 of length n×n: symmetric, zero diagonal.
func ComputePairwiseDistances(data []float64, n, dims int) []float64 {
	result := make([]float64, n*n)
	pairwiseDistancesRange(result, data, n, dims, 0, n)
	return result
}

// pairwiseDistancesRange fills dst with distances for source rows in
// [startRow, endRow): dist(i,j) for all j > i, mirrored across the diagonal.
// Row ranges do not overlap in dst, so parallel callers need no locking.
func pairwiseDistancesRange(dst, data []float64, n, dims, startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		dst[i*n+i] = 0 // dst may be reused scratch
		for j := i + 1; j < n; j++ {
			d := floats.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims], 2)
			dst[i*n+j] = d
			dst[j*n+i] = d
		}
	}
}
