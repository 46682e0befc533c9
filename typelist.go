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
	"fmt"
	"strings"
)

// IndexOf reports the position of T in the alternatives of v.
// If T is listed more than once, the first position is returned.
// The result does not depend on the value v holds.
func IndexOf[T any](v Sum) (int, bool) {
	c, _ := v.parts()
	i := c.find(isType[T])
	return i, i >= 0
}

// Has reports whether T is one of the alternatives of v.
func Has[T any](v Sum) bool {
	_, ok := IndexOf[T](v)
	return ok
}

// TypeAt returns the name of the type at position i of the alternatives
// of v. It panics with a *UsageError if i is out of range.
func TypeAt(v Sum, i int) string {
	c, _ := v.parts()
	checkIndex(c, "TypeAt", i)
	return typeName(c.typeAt(i))
}

// Len returns the number of alternatives of v.
func Len(v Sum) int {
	c, _ := v.parts()
	return c.len()
}

func isType[T any](p any) bool {
	_, ok := p.(*T)
	return ok
}

func holds[T any](c cell, i int) bool {
	return isType[T](c.typeAt(i))
}

func mustIndexOf[T any](c cell, op string) int {
	i := c.find(isType[T])
	if i < 0 {
		panic(usagef(op, "%s is not an alternative of %s", typeName((*T)(nil)), listName(c)))
	}
	return i
}

func checkIndex(c cell, op string, i int) {
	if n := c.len(); i < 0 || i >= n {
		panic(usagef(op, "index %d out of range [0, %d)", i, n))
	}
}

// typeName returns the name of T given a *T.
func typeName(p any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", p), "*")
}

// listName returns a description of the alternatives of c, such as
// "{int, string}".
func listName(c cell) string {
	var b strings.Builder
	b.WriteByte('{')
	for i := range c.len() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typeName(c.typeAt(i)))
	}
	b.WriteByte('}')
	return b.String()
}
