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

//go:build ignore

// gen.go generates of_gen.go, the fixed-arity variant types.
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 5

//go:embed of_gen.go.tmpl
var ofGenCode string

var tmpl = template.Must(template.New("of_gen.go.tmpl").Parse(ofGenCode))

type arity struct {
	N      int
	Params string // "A, B, C"
	Chain  string // "Cons[A, Cons[B, Cons[C, Nil]]]"
	Alts   []alt
}

type alt struct {
	I    int
	T    string // type parameter name
	F    string // handler parameter name
	Last bool
}

func main() {
	if err := generate(); err != nil {
		log.Fatal(err)
	}
}

func generate() error {
	var arities []arity
	for n := 2; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return err
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "malformed source:\n%s\n", buf.Bytes())
		return fmt.Errorf("malformed source: %v", err)
	}
	return os.WriteFile("of_gen.go", data, 0o666)
}

func newArity(n int) arity {
	a := arity{N: n}
	var params []string
	for i := range n {
		t := string(rune('A' + i))
		params = append(params, t)
		a.Alts = append(a.Alts, alt{
			I:    i,
			T:    t,
			F:    strings.ToLower(t),
			Last: i == n-1,
		})
	}
	a.Params = strings.Join(params, ", ")
	var chain strings.Builder
	for _, p := range params {
		fmt.Fprintf(&chain, "Cons[%s, ", p)
	}
	chain.WriteString("Nil")
	chain.WriteString(strings.Repeat("]", n))
	a.Chain = chain.String()
	return a
}
