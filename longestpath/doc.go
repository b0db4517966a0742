// Package longestpath computes, for every node the graph builder
// enumerated, the maximum sum of edge weights over any source-to-node
// path.
//
// Because graphbuild.Build only ever emits edges from a layer to the
// next, a single ordered pass over the layers already relaxes every
// edge in a valid topological order — the general "repeat sweeps until
// nothing changes" shape of Bellman-Ford relaxation degenerates to
// exactly one productive sweep for every graph this solver ever builds,
// which Solve reports as Stats.Sweeps.
package longestpath
