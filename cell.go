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

package variant

// Chain lists the alternatives of a variant. It is satisfied only by Cons
// and Nil, so that the alternatives T0, T1, T2 are written as
//
//	Cons[T0, Cons[T1, Cons[T2, Nil]]]
//
// The position of a type in the chain is its index.
type Chain interface {
	chain()
}

// Cloner is implemented by alternative types that need more than a Go value
// copy to produce an independent copy of themselves, such as types holding
// slices or maps. Clone and Assign use it when present.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by alternative types that want to be told when
// a variant drops them, either because the variant was released or because
// another alternative was stored over them.
type Releaser interface {
	Release()
}

// cell is the storage behind a variant. Each operation takes a position i
// and recurses through the chain until it reaches position 0.
type cell interface {
	// storeAt installs p, which must be a *T for the T at position i.
	// Any value previously owned at i must have been released.
	storeAt(i int, p any)

	// copyFrom stores a fresh copy of the value src owns at position i.
	copyFrom(i int, src cell)

	// releaseAt drops the value owned at position i.
	releaseAt(i int)

	// fetchAt returns the *T owned at position i, possibly nil.
	fetchAt(i int) any

	// typeAt returns a nil *T for the T at position i.
	typeAt(i int) any

	// find returns the first position whose typed nil pointer satisfies
	// match, or -1.
	find(match func(any) bool) int

	populated() int
	len() int
}

// Cons is a link in a Chain: the alternative T followed by the
// alternatives in R.
type Cons[T any, R Chain] struct {
	head *T
	tail R
}

func (Cons[T, R]) chain() {}

func (c *Cons[T, R]) rest() cell {
	return any(&c.tail).(cell)
}

func (c *Cons[T, R]) storeAt(i int, p any) {
	if i > 0 {
		c.rest().storeAt(i-1, p)
		return
	}
	x, ok := p.(*T)
	if !ok {
		panic(internalf("store of %T into slot of %s", p, typeName((*T)(nil))))
	}
	if c.head != nil {
		panic(internalf("store into occupied slot of %s", typeName((*T)(nil))))
	}
	c.head = x
}

func (c *Cons[T, R]) copyFrom(i int, src cell) {
	s := src.(*Cons[T, R])
	if i > 0 {
		c.rest().copyFrom(i-1, s.rest())
		return
	}
	if s.head == nil {
		panic(internalf("copy from empty slot of %s", typeName((*T)(nil))))
	}
	c.head = clone(s.head)
}

func (c *Cons[T, R]) releaseAt(i int) {
	if i > 0 {
		c.rest().releaseAt(i - 1)
		return
	}
	p := c.head
	if p == nil {
		panic(internalf("release of empty slot of %s", typeName((*T)(nil))))
	}
	c.head = nil
	if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
}

func (c *Cons[T, R]) fetchAt(i int) any {
	if i > 0 {
		return c.rest().fetchAt(i - 1)
	}
	return c.head
}

func (c *Cons[T, R]) typeAt(i int) any {
	if i > 0 {
		return c.rest().typeAt(i - 1)
	}
	return (*T)(nil)
}

func (c *Cons[T, R]) find(match func(any) bool) int {
	if match((*T)(nil)) {
		return 0
	}
	if j := c.rest().find(match); j >= 0 {
		return j + 1
	}
	return -1
}

func (c *Cons[T, R]) populated() int {
	n := c.rest().populated()
	if c.head != nil {
		n++
	}
	return n
}

func (c *Cons[T, R]) len() int {
	return 1 + c.rest().len()
}

// Nil terminates a Chain.
type Nil struct{}

func (Nil) chain() {}

// Positions are range checked before they reach the storage, so none of
// the positional operations can get here.

func (*Nil) storeAt(int, any) { panic(internalf("store past end of chain")) }
func (*Nil) copyFrom(int, cell) { panic(internalf("copy past end of chain")) }
func (*Nil) releaseAt(int) { panic(internalf("release past end of chain")) }
func (*Nil) fetchAt(int) any { panic(internalf("fetch past end of chain")) }
func (*Nil) typeAt(int) any { panic(internalf("type lookup past end of chain")) }
func (*Nil) find(func(any) bool) int { return -1 }
func (*Nil) populated() int { return 0 }
func (*Nil) len() int { return 0 }

// clone returns a newly allocated copy of *p.
func clone[T any](p *T) *T {
	if c, ok := any(p).(Cloner[T]); ok {
		x := c.Clone()
		return &x
	}
	x := *p
	return &x
}
