package parallel

import "context"

// Group is a transport-agnostic process-group handle: a rank addressed
// 0..Size()-1 able to exchange byte buffers with any other rank. The
// coordinator never assumes anything about the underlying transport
// beyond what Send/Recv promise.
type Group interface {
	Rank() int
	Size() int
	Send(ctx context.Context, dst int, payload []byte) error
	Recv(ctx context.Context, src int) ([]byte, error)
}
