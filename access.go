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

// Set stores x in v as the alternative T, releasing the value v held
// before. If T is listed more than once, the first position is used.
// Set panics with a *UsageError if T is not an alternative of v.
func Set[T any](v Sum, x T) {
	c, st := v.parts()
	st.set(c, "Set", mustIndexOf[T](c, "Set"), &x)
}

// SetAt stores x in v as the alternative at position i, releasing the
// value v held before. It panics with a *UsageError if i is out of range
// or the alternative at i is not of type T.
func SetAt[T any](v Sum, i int, x T) {
	c, st := v.parts()
	checkHolds[T](c, "SetAt", i)
	st.set(c, "SetAt", i, &x)
}

// Init stores the zero value of T in v, like Set.
func Init[T any](v Sum) {
	var zero T
	c, st := v.parts()
	st.set(c, "Init", mustIndexOf[T](c, "Init"), &zero)
}

// InitAt stores the zero value of T at position i, like SetAt.
func InitAt[T any](v Sum, i int) {
	var zero T
	c, st := v.parts()
	checkHolds[T](c, "InitAt", i)
	st.set(c, "InitAt", i, &zero)
}

// Is reports whether v holds the alternative T. If T is listed more than
// once, only the first position counts. Is panics with a *UsageError if v
// is empty or T is not an alternative of v.
func Is[T any](v Sum) bool {
	c, st := v.parts()
	i := mustIndexOf[T](c, "Is")
	return st.mustIndex("Is") == i
}

// IsAt reports whether v holds the alternative at position i.
// It panics with a *UsageError if v is empty or i is out of range.
func IsAt(v Sum, i int) bool {
	c, st := v.parts()
	checkIndex(c, "IsAt", i)
	return st.mustIndex("IsAt") == i
}

// MustIndex returns the position of the alternative v holds.
// It panics with a *UsageError if v is empty.
func MustIndex(v Sum) int {
	_, st := v.parts()
	return st.mustIndex("MustIndex")
}

// Get returns a pointer to the value held by v, which must be of type T.
// The pointer remains valid until the value is released or replaced.
//
// Get does not report failure: it panics with a *UsageError if v is
// empty or holds another alternative. Callers should check with Is first,
// or use a CaseOf function instead.
func Get[T any](v Sum) *T {
	c, st := v.parts()
	return fetch[T](c, "Get", st.mustIndex("Get"))
}

// GetAt is like Get, but also requires that v holds the alternative at
// position i.
func GetAt[T any](v Sum, i int) *T {
	return getAt[T](v, "GetAt", i)
}

func getAt[T any](v Sum, op string, i int) *T {
	c, st := v.parts()
	checkIndex(c, op, i)
	if active := st.mustIndex(op); active != i {
		panic(usagef(op, "variant holds alternative %d (%s), not %d (%s)",
			active, typeName(c.typeAt(active)), i, typeName(c.typeAt(i))))
	}
	return fetch[T](c, op, i)
}

func fetch[T any](c cell, op string, i int) *T {
	p, ok := c.fetchAt(i).(*T)
	if !ok {
		panic(usagef(op, "variant holds %s, not %s", typeName(c.typeAt(i)), typeName((*T)(nil))))
	}
	return p
}

func checkHolds[T any](c cell, op string, i int) {
	checkIndex(c, op, i)
	if !holds[T](c, i) {
		panic(usagef(op, "alternative %d is %s, not %s", i, typeName(c.typeAt(i)), typeName((*T)(nil))))
	}
}
