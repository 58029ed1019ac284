// Package delaunay implements the sequential divide-and-conquer Delaunay
// triangulation algorithm of Guibas and Stolfi on top of the quadedge
// package's quad-edge store, plus the pairwise merge ("zipper") step
// that both drives its recursion and serves as the coordination
// primitive the parallel package's tree reduction uses.
//
// Triangulate is the single entry point: it sorts the input
// lexicographically once, recurses to base cases of two or three points,
// and merges adjacent halves back together along the shared vertical
// strip between them. The recursion and the merge never look at more
// than the two (LE, RE) outer-hull edges a prior call returns — that
// pair is the entire public surface between recursive calls, per the
// quad-edge subdivision handle contract.
package delaunay
