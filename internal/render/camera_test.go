package render

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCameraProjectsCenterAndCorners(t *testing.T) {
	cam := Camera{ViewW: 1.56, ViewH: 0.96, ScreenW: 1024, ScreenH: 630}

	x, y := cam.Project(r3.Vec{})
	if x != 512 || y != 315 {
		t.Fatalf("origin projected to (%v, %v), expected screen center", x, y)
	}

	x, y = cam.Project(r3.Vec{X: -0.78, Y: 0.48})
	if x != 0 || y != 0 {
		t.Fatalf("top-left view corner projected to (%v, %v), expected (0, 0)", x, y)
	}

	x, y = cam.Project(r3.Vec{X: 0.78, Y: -0.48})
	if x != 1024 || y != 630 {
		t.Fatalf("bottom-right view corner projected to (%v, %v)", x, y)
	}
}

func TestCameraWidthToPixels(t *testing.T) {
	cam := Camera{ViewW: 2, ViewH: 1, ScreenW: 200, ScreenH: 100}
	if got := cam.WidthToPixels(0.1); got != 10 {
		t.Fatalf("WidthToPixels(0.1) = %v, expected 10", got)
	}
}
