package lines_test

import (
	"fmt"
	"image"

	"golang.org/x/image/colornames"

	"honnef.co/go/lines"
	"honnef.co/go/lines/raster"
)

func ExampleWriteArc() {
	pts, err := lines.WriteArc(lines.Forward, lines.Right, 90, 3, lines.V3(0, 0, 1))
	if err != nil {
		panic(err)
	}
	for _, p := range pts {
		fmt.Printf("(%.3f, %.3f, %.3f)\n", p.X, p.Y, p.Z)
	}
	// Output:
	// (1.000, 0.000, 1.000)
	// (0.707, 0.707, 1.000)
	// (0.000, 1.000, 1.000)
}

func ExampleArrowProfile() {
	pts := []lines.Vec3{{}, lines.V3(4, 0, 0)}
	line, profile := lines.ArrowProfile(pts, 0.5, 0.5, 2, nil)
	fmt.Println(len(line), "points")
	for _, k := range profile {
		fmt.Printf("%.4f: %.2f\n", k.Time, k.Width)
	}
	// Output:
	// 4 points
	// 0.0000: 0.50
	// 0.7500: 0.50
	// 0.7520: 1.00
	// 1.0000: 0.00
}

func ExampleWire() {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	canvas := raster.NewCanvas(img, 16, lines.V2(32, 32))
	reg, err := lines.NewRegistry(canvas, lines.DefaultConfig())
	if err != nil {
		panic(err)
	}
	defer reg.Close()

	w, err := reg.Make("heading")
	if err != nil {
		panic(err)
	}
	for frame := range 3 {
		// Only the first frame computes geometry; later frames just recolor.
		shade := colornames.Red
		shade.G = uint8(frame * 100)
		if _, err := w.Arc(360, lines.Back, lines.V3(1, 0, 0), lines.Vec3{}, lines.Style{Color: shade}); err != nil {
			panic(err)
		}
	}
	canvas.Render()

	fmt.Println("recomputes:", w.Recomputes())
	fmt.Println("points:", len(w.Geometry().Points))
	fmt.Println("loop:", w.Geometry().Loop)
	_, _, _, a := img.At(32+16, 32).RGBA()
	fmt.Println("drawn:", a > 0)
	_, _, _, a = img.At(32, 32).RGBA()
	fmt.Println("center drawn:", a > 0)
	// Output:
	// recomputes: 1
	// points: 49
	// loop: true
	// drawn: true
	// center drawn: false
}
