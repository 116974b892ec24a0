package octonav_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/octonav"
	"github.com/hupe1980/octonav/geom"
)

func Example() {
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(16))
	pillar := geom.NewBox(geom.V3(-1, -8, -1), geom.V3(1, 8, 1))

	nav, err := octonav.NewBuilder().
		Obstacles(pillar).
		Bounds(world).
		MinCellSize(1).
		Build(context.Background())
	if err != nil {
		panic(err)
	}

	res, err := nav.FindPath(geom.V3(-6, 0, 0), geom.V3(6, 0, 0))
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Status)
	fmt.Println(len(res.Cells) > 1)
	// Output:
	// found
	// true
}

func ExampleNavigator_FindPath_unreachable() {
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(16))
	wall := geom.NewBox(geom.V3(-1, -8, -8), geom.V3(1, 8, 8))

	nav, err := octonav.BuildNavigation(context.Background(), []geom.Obstacle{wall}, world,
		octonav.WithMinCellSize(1))
	if err != nil {
		panic(err)
	}

	res, _ := nav.FindPath(geom.V3(-6, 0, 0), geom.V3(6, 0, 0))
	last := res.Waypoints()[len(res.Cells)-1]

	fmt.Println(res.Status)
	fmt.Println(last.X < 0)
	// Output:
	// unreachable
	// true
}
