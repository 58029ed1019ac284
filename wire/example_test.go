package wire_test

import (
	"bytes"
	"fmt"

	"github.com/arborix-go/delaunay/wire"
)

func ExampleEncode() {
	msg := wire.Message{
		Points: []wire.XY{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Edges:  [][2]uint32{{0, 1}},
		LE:     wire.EdgeRef{Index: 0},
		RE:     wire.EdgeRef{Index: 0, Sym: true},
	}

	var buf bytes.Buffer
	if err := wire.Encode(&buf, msg); err != nil {
		fmt.Println(err)
		return
	}

	got, err := wire.Decode(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(got.Points), len(got.Edges))
	// Output: 2 1
}
