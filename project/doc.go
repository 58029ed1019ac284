// Package project extracts the public result of a finished
// triangulation — the edge set and the triangle set — by walking the
// quad-edge store's primal edges exactly once each. Edges and Triangles
// never mutate the store they are given; they are safe to call at any
// point after delaunay.Triangulate or parallel.Coordinator.Run returns.
// Build assembles both into the top-level Triangulation egress type, and
// EulerCheck offers a cheap sanity check on the result.
package project
