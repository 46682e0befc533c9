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

import (
	"testing"

	"github.com/go-quicktest/qt"
)

type threeCells = Cons[int, Cons[string, Cons[tracked, Nil]]]

func TestCellStoreFetchRelease(t *testing.T) {
	var cnt counter
	var s threeCells
	var c cell = &s
	qt.Assert(t, qt.Equals(c.len(), 3))
	qt.Assert(t, qt.Equals(c.populated(), 0))

	x := newTracked(&cnt, 1)
	c.storeAt(2, &x)
	qt.Assert(t, qt.Equals(c.populated(), 1))
	qt.Assert(t, qt.Equals(s.tail.tail.head, &x))
	qt.Assert(t, qt.Equals(c.fetchAt(2).(*tracked), &x))
	qt.Assert(t, qt.IsNil(c.fetchAt(0).(*int)))

	c.releaseAt(2)
	qt.Assert(t, qt.Equals(c.populated(), 0))
	qt.Assert(t, qt.Equals(cnt.live, 0))
	qt.Assert(t, qt.IsNil(s.tail.tail.head))
}

func TestCellCopyFrom(t *testing.T) {
	var src, dst threeCells
	str := "hello"
	(&src).storeAt(1, &str)
	(&dst).copyFrom(1, &src)

	got := dst.tail.head
	qt.Assert(t, qt.Equals(*got, "hello"))
	qt.Assert(t, qt.Not(qt.Equals(got, &str)))
	qt.Assert(t, qt.Equals((&dst).populated(), 1))
}

func TestCellTypeAt(t *testing.T) {
	var s threeCells
	_, ok := (&s).typeAt(1).(*string)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals((&s).find(isType[tracked]), 2))
	qt.Assert(t, qt.Equals((&s).find(isType[bool]), -1))
}

func TestCellInternalErrors(t *testing.T) {
	var s threeCells
	qt.Assert(t, qt.PanicMatches(func() { (&s).releaseAt(0) },
		`variant: internal error: release of empty slot of int`))
	qt.Assert(t, qt.PanicMatches(func() { (&s).storeAt(0, new(string)) },
		`variant: internal error: store of \*string into slot of int`))
	qt.Assert(t, qt.PanicMatches(func() { (&s).fetchAt(3) },
		`variant: internal error: fetch past end of chain`))

	n := 1
	(&s).storeAt(0, &n)
	qt.Assert(t, qt.PanicMatches(func() { (&s).storeAt(0, new(int)) },
		`variant: internal error: store into occupied slot of int`))
}
