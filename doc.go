// Package hclust implements agglomerative hierarchical clustering with
// unweighted average linkage (UPGMA).
//
// Given a set of numeric feature vectors, Cluster computes the full pairwise
// Euclidean distance matrix, repeatedly merges the two closest clusters using
// the Lance–Williams average-linkage update, and exposes the result as a
// merge history, a nested dendrogram tree, and flat partitions for every
// achievable cluster count.
//
// Basic usage:
//
//	result, err := hclust.Cluster(data, hclust.DefaultConfig())
//	// result.Tree is the dendrogram root
//	// result.Order is the leaf visiting order for rendering
//	// result.ClustersGivenK[k-1] is the flat partition into k clusters
//
// Long runs can be observed and interrupted through the Config callbacks:
//
//	cfg := hclust.DefaultConfig()
//	cfg.Progress = func(msg string) { fmt.Println(msg) }
//	cfg.Cancelled = func() bool { return ctx.Err() != nil }
//	result, err := hclust.Cluster(data, cfg)
//	// errors.Is(err, hclust.ErrCancelled) if the callback fired
//
// The agglomeration loop is a single synchronous unit of work on one
// goroutine: it never yields, and cancellation is observed only by polling
// Cancelled at merge boundaries. Callers that need responsiveness should run
// Cluster on its own goroutine and back Cancelled with a primitive the
// polling goroutine can query without servicing its own message traffic
// (an atomic flag, a context, a closed channel).
//
// # Trees as text
//
// Newick serializes a dendrogram to bracket notation, ParseNewick reads it
// back, and RenderTree draws an indented ASCII diagram for terminals.
package hclust
