package point_test

import (
	"fmt"

	"github.com/mikenye/polyclip2d/point"
)

func ExampleNew() {
	p := point.New(10.5, 20.25)
	fmt.Printf("Point: %s, type %T\n", p, p)

	// Output:
	// Point: (10.5,20.25), type point.Point
}

func ExamplePoint_Coordinates() {
	p := point.New(5, -3)

	x, y := p.Coordinates()
	fmt.Printf("Point coordinates: (%g, %g)\n", x, y)

	// Output:
	// Point coordinates: (5, -3)
}

func ExamplePoint_Sub() {
	a := point.New(1, 2)
	b := point.New(4, 6)

	// Sub gives the supporting vector of the edge (a, b).
	v := b.Sub(a)
	fmt.Printf("edge vector from %s to %s is %s\n", a, b, v)

	// Output:
	// edge vector from (1,2) to (4,6) is (3,4)
}

func ExamplePoint_PerpDot() {
	origin := point.New(0, 0)
	pointA := point.New(10, 0)
	pointB := point.New(10, 10)

	perp := pointA.Sub(origin).PerpDot(pointB.Sub(origin))
	fmt.Printf("perpdot of the vectors to %s and %s is %g\n", pointA, pointB, perp)

	// Output:
	// perpdot of the vectors to (10,0) and (10,10) is 100
}

func ExamplePoint_Eq() {
	p := point.New(3, 4)
	q := point.New(3, 4)

	isEqual := p.Eq(q)
	fmt.Printf("Are %s and %s equal: %t\n", p, q, isEqual)

	// Output:
	// Are (3,4) and (3,4) equal: true
}

func ExamplePoint_Compare() {
	p := point.New(1, 5)
	q := point.New(2, 0)

	fmt.Println(p.Compare(q))

	// Output:
	// -1
}

func ExamplePoint_String() {
	p := point.New(1, 2)

	fmt.Println(p)
	fmt.Println(p.String())

	// Output:
	// (1,2)
	// (1,2)
}

func ExampleOrientation() {
	p := point.New(0, 0)
	q := point.New(1, 0)
	r := point.New(1, 1)

	fmt.Println(point.Orientation(p, q, r))

	// Output:
	// Counterclockwise
}
