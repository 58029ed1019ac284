package project_test

import (
	"fmt"

	"github.com/arborix-go/delaunay/delaunay"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
)

func ExampleBuild() {
	p0, _ := geom.NewPoint(0, 0, 0)
	p1, _ := geom.NewPoint(1, 0, 1)
	p2, _ := geom.NewPoint(0, 1, 2)

	sub, err := delaunay.Triangulate([]geom.Point{p0, p1, p2})
	if err != nil {
		fmt.Println(err)
		return
	}

	tri := project.Build(sub.Store, sub.LE, []geom.Point{p0, p1, p2})
	fmt.Println(len(tri.Edges), len(tri.Triangles))
	// Output: 3 1
}
