package envelope_test

import (
	"fmt"

	"github.com/npillmayer/curved"
	"github.com/npillmayer/curved/envelope"
)

func ExampleCurve() {
	crv := envelope.Identity()
	crv.AddPoint(envelope.PointAt(curved.P(0.5, 0.9)))
	fmt.Println(crv)
	fmt.Printf("%.2f\n", crv.Sample(0.25))
	// Output:
	// (0,0) .. (0.5,0.9) .. (1,1)
	// 0.45
}

func ExampleCurve_Polyline() {
	crv := envelope.Smooth()
	for _, pt := range crv.Polyline(3) {
		fmt.Println(pt)
	}
	// Output:
	// (0,0)
	// (0.5,0.5)
	// (1,1)
}
