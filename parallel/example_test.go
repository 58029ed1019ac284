package parallel_test

import (
	"context"
	"fmt"

	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/parallel"
)

func ExampleRunLoopback() {
	coords := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		p, _ := geom.NewPoint(c[0], c[1], uint32(i))
		pts[i] = p
	}

	result, err := parallel.RunLoopback(context.Background(), parallel.DefaultRunOptions(), pts, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(result.Edges), len(result.Triangles))
	// Output: 5 2
}
