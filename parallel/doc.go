// Package parallel implements the module's process-group tree-reduction
// coordinator: each rank locally triangulates its own partition, then
// ranks pair off across ⌈log₂P⌉ rounds of a binary tree, each round
// transmitting one subdivision over the wire codec and zipping it into
// the receiver's with the sequential merge step, until rank 0 alone
// holds the finished triangulation.
//
// Transport is abstracted behind the Group interface so the same
// Coordinator drives both LoopbackGroup, an in-process goroutine-based
// implementation used for tests and worked examples, and a real
// multi-process transport a caller wires in.
package parallel
