package wire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/arborix-go/delaunay/dlnyerr"
)

// Encode writes msg to w as one framed message: a u32 payload length, the
// payload itself in the byte layout the module's wire format specifies,
// and a trailing u32 CRC-32 (IEEE) of the payload.
func Encode(w io.Writer, msg Message) error {
	const op = "wire.Encode"
	for _, e := range msg.Edges {
		if e[0] >= e[1] {
			return dlnyerr.Wrap(dlnyerr.InputError, op, &ErrBadEdgeOrder{Origin: e[0], Dest: e[1]})
		}
	}

	var payload bytes.Buffer
	if err := writeMessage(&payload, msg); err != nil {
		return dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}

	body := payload.Bytes()
	sum := crc32.ChecksumIEEE(body)

	if err := binary.Write(w, binary.LittleEndian, uint32(len(body))); err != nil {
		return dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	if _, err := w.Write(body); err != nil {
		return dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	if err := binary.Write(w, binary.LittleEndian, sum); err != nil {
		return dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	return nil
}

// Decode reads one framed message written by Encode, verifying the
// length prefix and checksum before attempting to interpret the payload.
func Decode(r io.Reader) (Message, error) {
	const op = "wire.Decode"

	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return Message{}, dlnyerr.Wrap(dlnyerr.TransportError, op, ErrTruncated)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return Message{}, dlnyerr.Wrap(dlnyerr.TransportError, op, ErrTruncated)
	}

	var wantSum uint32
	if err := binary.Read(r, binary.LittleEndian, &wantSum); err != nil {
		return Message{}, dlnyerr.Wrap(dlnyerr.TransportError, op, ErrTruncated)
	}
	if gotSum := crc32.ChecksumIEEE(body); gotSum != wantSum {
		return Message{}, dlnyerr.Wrap(dlnyerr.TransportError, op, ErrChecksumMismatch)
	}

	msg, err := readMessage(bytes.NewReader(body))
	if err != nil {
		return Message{}, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	return msg, nil
}

func writeMessage(buf *bytes.Buffer, msg Message) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(msg.Points))); err != nil {
		return err
	}
	for _, p := range msg.Points {
		if err := binary.Write(buf, binary.LittleEndian, p.X); err != nil {
			return err
		}
		if err := binary.Write(buf, binary.LittleEndian, p.Y); err != nil {
			return err
		}
	}

	if err := binary.Write(buf, binary.LittleEndian, uint32(len(msg.Edges))); err != nil {
		return err
	}
	for _, e := range msg.Edges {
		if err := binary.Write(buf, binary.LittleEndian, e[0]); err != nil {
			return err
		}
		if err := binary.Write(buf, binary.LittleEndian, e[1]); err != nil {
			return err
		}
	}

	if err := binary.Write(buf, binary.LittleEndian, msg.LE.pack()); err != nil {
		return err
	}
	return binary.Write(buf, binary.LittleEndian, msg.RE.pack())
}

func readMessage(r *bytes.Reader) (Message, error) {
	var nPoints uint32
	if err := binary.Read(r, binary.LittleEndian, &nPoints); err != nil {
		return Message{}, err
	}
	points := make([]XY, nPoints)
	for i := range points {
		if err := binary.Read(r, binary.LittleEndian, &points[i].X); err != nil {
			return Message{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &points[i].Y); err != nil {
			return Message{}, err
		}
	}

	var nEdges uint32
	if err := binary.Read(r, binary.LittleEndian, &nEdges); err != nil {
		return Message{}, err
	}
	edges := make([][2]uint32, nEdges)
	for i := range edges {
		if err := binary.Read(r, binary.LittleEndian, &edges[i][0]); err != nil {
			return Message{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &edges[i][1]); err != nil {
			return Message{}, err
		}
		if edges[i][0] >= edges[i][1] {
			return Message{}, &ErrBadEdgeOrder{Origin: edges[i][0], Dest: edges[i][1]}
		}
	}

	var lePacked, rePacked uint32
	if err := binary.Read(r, binary.LittleEndian, &lePacked); err != nil {
		return Message{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &rePacked); err != nil {
		return Message{}, err
	}

	le := unpackEdgeRef(lePacked)
	re := unpackEdgeRef(rePacked)
	if le.Index >= nEdges && nEdges > 0 {
		return Message{}, &ErrEdgeIndexOutOfRange{Index: le.Index, Limit: nEdges}
	}
	if re.Index >= nEdges && nEdges > 0 {
		return Message{}, &ErrEdgeIndexOutOfRange{Index: re.Index, Limit: nEdges}
	}

	return Message{Points: points, Edges: edges, LE: le, RE: re}, nil
}
