// Package fixtures provides deterministic point sets for the module's
// test suite: the six concrete scenarios S1..S6, exercised end to end
// through delaunay.Triangulate and project.Build by this package's own
// tests.
package fixtures
