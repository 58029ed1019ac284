package parallel

import "fmt"

// ErrEmptyPartition is returned by Coordinator.Run when a rank is handed
// zero local points. Every rank runs a local delaunay.Triangulate, so a
// rank handed exactly one point fails with delaunay.ErrTooFewPoints
// instead.
var ErrEmptyPartition = fmt.Errorf("parallel: rank was given an empty partition")

// ErrRankOutOfRange is returned by LoopbackGroup when Send or Recv
// addresses a rank outside [0, Size()).
var ErrRankOutOfRange = fmt.Errorf("parallel: rank out of range")

// ErrNoResult is returned by RunLoopback if rank 0 finished without
// producing a Triangulation, which indicates a bug in the reduction
// schedule rather than a data problem.
var ErrNoResult = fmt.Errorf("parallel: rank 0 produced no result")
