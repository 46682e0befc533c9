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

// Package variant implements tagged unions: values that hold exactly one of
// a fixed, ordered list of alternative types and know which one they hold.
//
// The alternatives of a Variant are given as a Chain. For the common
// arities, the types Of2 to Of5 spell out the chain and add methods that
// are checked at compile time:
//
//	var v variant.Of3[Foo, int, string]
//	v.Set1(42)
//	v.Is1()     // true
//	*v.Get1()   // 42
//	n := variant.CaseOf3(&v,
//		func(*Foo) int { return 0 },
//		func(i *int) int { return *i },
//		func(s *string) int { return len(*s) },
//	)
//
// The generic functions Set, Is and Get select an alternative by type
// instead. Go cannot reject a type that is not an alternative at compile
// time, so they panic instead; the variantgen command generates named
// types for which the check is done by the compiler.
//
// A variant owns its value. Clone and Assign copy it deeply, using Cloner
// when the alternative implements it, and Release drops it, calling
// Releaser when implemented. A plain Go assignment of a variant shares the
// value between both copies and should be avoided.
//
// Operations whose preconditions are not met, such as Get on an empty
// variant, panic with a *UsageError. These panics signal bugs in the
// caller and are not meant to be recovered.
//
// Variants are not safe for concurrent use.
package variant

//go:generate go run gen.go

import (
	"log/slog"

	"cuelabs.dev/go/variant/internal/variantdebug"
)

// Sum is implemented by pointers to all variant types in this package,
// and to any struct type that embeds one of them.
type Sum interface {
	// IsSet reports whether the variant holds a value.
	IsSet() bool

	// Index returns the position of the held alternative,
	// or -1 if the variant is empty.
	Index() int

	// Release drops the held value, if any.
	Release()

	parts() (cell, *state)
}

// Variant holds at most one value of one of the alternatives listed by S.
// The zero value is an empty variant, ready to use.
type Variant[S Chain] struct {
	storage S
	st      state
}

type state struct {
	isSet  bool
	active int
}

func (v *Variant[S]) parts() (cell, *state) {
	return any(&v.storage).(cell), &v.st
}

func (v *Variant[S]) cell() cell {
	return any(&v.storage).(cell)
}

// IsSet reports whether v holds a value.
func (v *Variant[S]) IsSet() bool {
	return v.st.isSet
}

// Index returns the position of the alternative v holds,
// or -1 if v is empty.
func (v *Variant[S]) Index() int {
	if !v.st.isSet {
		return -1
	}
	return v.st.active
}

// Len returns the number of alternatives of v.
func (v *Variant[S]) Len() int {
	return v.cell().len()
}

// Release drops the value held by v, leaving it empty.
// It is a no-op if v is already empty.
func (v *Variant[S]) Release() {
	v.st.release(v.cell(), "Release")
}

// Clone returns a variant holding a deep copy of the value held by v.
// The copy does not share storage with v.
func (v *Variant[S]) Clone() Variant[S] {
	var w Variant[S]
	if v.st.isSet {
		w.cell().copyFrom(v.st.active, v.cell())
		w.st = v.st
	}
	check(w.cell(), &w.st, "Clone")
	return w
}

// Assign replaces the value held by v with a deep copy of the value held
// by src, or empties v if src is empty. Assigning v to itself does nothing.
func (v *Variant[S]) Assign(src *Variant[S]) {
	if v == src {
		return
	}
	// Copy first, so that a failing Clone leaves v as it was.
	w := src.Clone()
	v.Release()
	*v = w
	check(v.cell(), &v.st, "Assign")
}

// put stores p, a freshly allocated *T for the T at position i.
func (v *Variant[S]) put(op string, i int, p any) {
	v.st.set(v.cell(), op, i, p)
}

func (v *Variant[S]) isAt(op string, i int) bool {
	return v.st.mustIndex(op) == i
}

// set stores p, a freshly allocated value for position i, releasing the
// value held before.
func (st *state) set(c cell, op string, i int, p any) {
	if st.isSet {
		st.release(c, op)
	}
	c.storeAt(i, p)
	st.isSet = true
	st.active = i
	check(c, st, op)
}

func (st *state) release(c cell, op string) {
	if !st.isSet {
		return
	}
	i := st.active
	st.isSet = false
	st.active = 0
	c.releaseAt(i)
	check(c, st, op)
}

// mustIndex returns the active position, panicking if the variant is empty.
func (st *state) mustIndex(op string) int {
	if !st.isSet {
		panic(usagef(op, "variant is empty"))
	}
	return st.active
}

// check verifies the storage invariants when VARIANT_DEBUG=strict is set,
// and logs the operation when VARIANT_DEBUG=logops is set.
func check(c cell, st *state, op string) {
	flags := variantdebug.Get()
	if flags.LogOps {
		index := -1
		if st.isSet {
			index = st.active
		}
		slog.Debug("variant operation", "op", op, "alternatives", listName(c), "index", index)
	}
	if !flags.Strict {
		return
	}
	n := c.populated()
	switch {
	case !st.isSet && n != 0:
		panic(usagef(op, "empty variant owns %d values", n))
	case st.isSet && n != 1:
		panic(usagef(op, "variant owns %d values, want 1", n))
	case st.isSet && c.fetchAt(st.active) == nil:
		panic(usagef(op, "variant does not own its value at index %d", st.active))
	}
}
