// Copyright 2025 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shapes

import (
	"image"
	"math"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestZeroShape(t *testing.T) {
	var s Shape
	qt.Assert(t, qt.IsFalse(s.IsSet()))
	qt.Assert(t, qt.Equals(s.Which(), ShapeNone))
	qt.Assert(t, qt.PanicMatches(func() { s.IsCircle() }, `variant: IsAt: variant is empty`))
	qt.Assert(t, qt.PanicMatches(func() { Area(&s) }, `variant: MustIndex: variant is empty`))
}

func TestArea(t *testing.T) {
	tests := []struct {
		testName string
		set      func(s *Shape)
		kind     ShapeKind
		want     float64
	}{{
		testName: "Circle",
		set:      func(s *Shape) { s.SetCircle(Circle{Radius: 2}) },
		kind:     ShapeCircle,
		want:     4 * math.Pi,
	}, {
		testName: "Rect",
		set:      func(s *Shape) { s.SetRect(Rect{image.Rect(0, 0, 3, 4)}) },
		kind:     ShapeRect,
		want:     12,
	}, {
		testName: "Triangle",
		set: func(s *Shape) {
			s.SetPath(Path{Points: []image.Point{{0, 0}, {4, 0}, {0, 3}}})
		},
		kind: ShapePath,
		want: 6,
	}, {
		testName: "Label",
		set:      func(s *Shape) { s.SetLabel("hello") },
		kind:     ShapeLabel,
		want:     0,
	}, {
		testName: "EmptyPath",
		set:      func(s *Shape) { s.InitPath() },
		kind:     ShapePath,
		want:     0,
	}}
	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			var s Shape
			test.set(&s)
			qt.Assert(t, qt.Equals(s.Which(), test.kind))
			qt.Assert(t, qt.Equals(Area(&s), test.want))
		})
	}
}

func TestOverwrite(t *testing.T) {
	var s Shape
	s.SetLabel("a")
	qt.Assert(t, qt.IsTrue(s.IsLabel()))
	s.SetCircle(Circle{Radius: 1})
	qt.Assert(t, qt.IsTrue(s.IsCircle()))
	qt.Assert(t, qt.IsFalse(s.IsLabel()))
	qt.Assert(t, qt.Equals(s.Which(), ShapeCircle))
	qt.Assert(t, qt.PanicMatches(func() { s.AsLabel() },
		`variant: GetAt: variant holds alternative 0 \(shapes.Circle\), not 3 \(string\)`))

	s.Release()
	qt.Assert(t, qt.IsFalse(s.IsSet()))
	s.Release()
	qt.Assert(t, qt.Equals(s.Which(), ShapeNone))
}

func TestCloneDoesNotSharePoints(t *testing.T) {
	var s Shape
	s.SetPath(Path{Points: []image.Point{{0, 0}, {1, 1}}})
	c := s.Clone()
	Translate(&s, image.Pt(10, 10))

	qt.Assert(t, qt.DeepEquals(s.AsPath().Points, []image.Point{{10, 10}, {11, 11}}))
	qt.Assert(t, qt.DeepEquals(c.AsPath().Points, []image.Point{{0, 0}, {1, 1}}))

	var d Shape
	d.SetLabel("replaced")
	d.Assign(&c)
	Translate(&c, image.Pt(1, 0))
	qt.Assert(t, qt.DeepEquals(d.AsPath().Points, []image.Point{{0, 0}, {1, 1}}))
}

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(ShapeNone.String(), "None"))
	qt.Assert(t, qt.Equals(ShapeLabel.String(), "Label"))
	qt.Assert(t, qt.Equals(ShapeKind(7).String(), "ShapeKind(7)"))
}
