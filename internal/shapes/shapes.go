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

// Package shapes shows the code generated by variantgen, and how it is used.
package shapes

//go:generate go run cuelabs.dev/go/variant/cmd/variantgen gen shapes.cue

import (
	"image"
	"math"
	"slices"
)

type Circle struct {
	Center image.Point
	Radius int
}

type Rect struct {
	image.Rectangle
}

// Path is a closed polygon.
type Path struct {
	Points []image.Point
}

// Clone implements variant.Cloner, so that copies of a Shape do not
// share points.
func (p Path) Clone() Path {
	return Path{Points: slices.Clone(p.Points)}
}

// Area returns the area covered by s. Labels cover no area.
func Area(s *Shape) float64 {
	return MatchShape(s,
		func(c *Circle) float64 {
			r := float64(c.Radius)
			return math.Pi * r * r
		},
		func(r *Rect) float64 {
			return float64(r.Dx() * r.Dy())
		},
		func(p *Path) float64 {
			// Shoelace formula.
			var twice int
			for i, a := range p.Points {
				b := p.Points[(i+1)%len(p.Points)]
				twice += a.X*b.Y - b.X*a.Y
			}
			return math.Abs(float64(twice)) / 2
		},
		func(*string) float64 { return 0 },
	)
}

// Translate moves s by d.
func Translate(s *Shape, d image.Point) {
	switch s.Which() {
	case ShapeCircle:
		c := s.AsCircle()
		c.Center = c.Center.Add(d)
	case ShapeRect:
		r := s.AsRect()
		r.Rectangle = r.Rectangle.Add(d)
	case ShapePath:
		p := s.AsPath()
		for i := range p.Points {
			p.Points[i] = p.Points[i].Add(d)
		}
	}
}
