package cheapruler_test

import (
	"encoding/json"
	"fmt"

	cheapruler "github.com/apendleton/cheap-ruler"
)

func ExampleRuler_Distance() {
	r, err := cheapruler.New(40, cheapruler.Kilometers)
	if err != nil {
		panic(err)
	}
	d := r.Distance(cheapruler.Point{-73.96, 40.78}, cheapruler.Point{-73.98, 40.75})
	fmt.Printf("%.3f km", d)
	// Output:
	// 3.743 km
}

func ExampleRuler_PointOnLine() {
	r := cheapruler.MustNew(0, cheapruler.Kilometers)
	line := cheapruler.Line{{0, 0}, {2, 0}}
	b, _ := json.Marshal(r.PointOnLine(line, cheapruler.Point{0.5, 0.1}))
	fmt.Println(string(b))
	// Output:
	// {"point":[0.5,0],"index":0,"t":0.25}
}

func ExampleRuler_BufferPoint() {
	r := cheapruler.MustNew(0, cheapruler.Meters)
	box := r.BufferPoint(cheapruler.Point{0, 0}, 0)
	fmt.Println(box, cheapruler.InsideBBox(cheapruler.Point{0, 0}, box))
	// Output:
	// [0 0 0 0] true
}
