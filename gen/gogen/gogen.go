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

// Package gogen generates Go variant types from declaration files.
package gogen

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"github.com/mpvl/unique"
	"golang.org/x/mod/module"
	"golang.org/x/tools/imports"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"cuelabs.dev/go/variant/gen/declfile"
)

// DefaultVariantImport is the import path of the variant package used by
// generated code unless Config.VariantImport says otherwise.
const DefaultVariantImport = "cuelabs.dev/go/variant"

// Config defines options for generating Go code.
type Config struct {
	// VariantImport is the import path of the variant package.
	// It defaults to DefaultVariantImport.
	VariantImport string

	// Source names the declaration file in the header of the
	// generated file. It is omitted if empty.
	Source string

	// Filename is the name of the generated file. It is only used
	// in error messages.
	Filename string

	// Logger, if not nil, receives a debug record per generated type.
	Logger *slog.Logger
}

//go:embed variant.go.tmpl
var fileTemplateText string

var fileTemplate = template.Must(template.New("variant.go.tmpl").Parse(fileTemplateText))

// names that generated code refers to, besides the variant package.
var reservedNames = []string{"k", "v", "x", "src", "strconv"}

// Generate returns the Go source of the variant types declared in f,
// which must have been returned by declfile.Parse.
//
// Each variant named V becomes a struct type V, with methods
// Which, IsSet, Release, Clone and Assign, and for each alternative
// named A the methods SetA, InitA, IsA and AsA. Generate also declares
// the kind type VKind with the constants VNone and VA, and the
// function MatchV, which takes one function per alternative.
//
// In case of a formatting error, Generate returns the unformatted code
// along with the error, to allow analysis of the failed code.
func Generate(f *declfile.File, c *Config) (b []byte, err error) {
	if c == nil {
		c = &Config{}
	}
	g := &generator{
		Config:  *c,
		globals: make(map[string]string),
	}
	if g.VariantImport == "" {
		g.VariantImport = DefaultVariantImport
	}
	if g.Filename == "" {
		g.Filename = f.Package + "_variant.go"
	}
	if err := module.CheckImportPath(g.VariantImport); err != nil {
		return nil, errors.Newf(token.NoPos, "invalid variant import path: %v", err)
	}

	data := &fileData{
		Source:  g.Source,
		Package: f.Package,
		Imports: g.imports(f),
	}
	for _, name := range f.VariantNames() {
		data.Variants = append(data.Variants, g.variant(name, f.Variants[name]))
	}
	if g.err != nil {
		return nil, g.err
	}

	var w bytes.Buffer
	if err := fileTemplate.Execute(&w, data); err != nil {
		return nil, errors.Promote(err, "generate failed")
	}
	b, err = imports.Process(g.Filename, w.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return w.Bytes(), err
	}
	return b, nil
}

type fileData struct {
	Source   string
	Package  string
	Imports  [][]importSpec // standard library first
	Variants []*variantData
}

type importSpec struct {
	Name string // empty if the package name matches the path
	Path string
}

type variantData struct {
	Name   string
	Doc    []string
	Chain  string
	Result string
	Alts   []altData
}

type altData struct {
	Index int
	Name  string
	Type  string
	Param string
	Last  bool
}

type generator struct {
	Config

	// globals maps each generated package-level identifier to the
	// variant that declares it.
	globals map[string]string

	err errors.Error
}

func (g *generator) addErr(format string, args ...any) {
	g.err = errors.Append(g.err, errors.Newf(token.NoPos, format, args...))
}

// imports returns the imports of the generated file: those of f, strconv
// and the variant package, sorted by path and grouped as by goimports.
func (g *generator) imports(f *declfile.File) [][]importSpec {
	paths := append([]string{"strconv", g.VariantImport}, f.Imports...)
	unique.Sort(unique.StringSlice{P: &paths})

	var std, other []importSpec
	for _, p := range paths {
		spec := importSpec{Path: p}
		switch name := declfile.PackageName(p); {
		case p == g.VariantImport:
			if name != "variant" {
				spec.Name = "variant"
			}
		case name == "variant":
			g.addErr("import %q: package name variant is used for %s", p, g.VariantImport)
		case p != "strconv" && slices.Contains(reservedNames, name):
			g.addErr("import %q: package name %s is used by generated code", p, name)
		}
		if first, _, _ := strings.Cut(p, "/"); strings.Contains(first, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	var groups [][]importSpec
	for _, group := range [][]importSpec{std, other} {
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func (g *generator) variant(name string, v *declfile.Variant) *variantData {
	d := &variantData{
		Name:   name,
		Result: resultParam(v.Alternatives),
	}
	g.declare(name, name, name+"Kind", name+"None", "Match"+name)

	types := make([]string, len(v.Alternatives))
	for i, a := range v.Alternatives {
		types[i] = a.Type
		g.declare(name, name+a.Name)
		d.Alts = append(d.Alts, altData{
			Index: i,
			Name:  a.Name,
			Type:  a.Type,
			Param: "on" + a.Name,
			Last:  i == len(v.Alternatives)-1,
		})
	}

	var chain strings.Builder
	for _, t := range types {
		fmt.Fprintf(&chain, "variant.Cons[%s, ", t)
	}
	chain.WriteString("variant.Nil")
	chain.WriteString(strings.Repeat("]", len(types)))
	d.Chain = chain.String()

	if v.Doc != "" {
		d.Doc = strings.Split(strings.TrimRight(v.Doc, "\n"), "\n")
	} else {
		d.Doc = []string{
			fmt.Sprintf("%s holds one of %s.", name, joinOr(types)),
			"The zero value holds nothing.",
		}
	}

	if g.Logger != nil {
		g.Logger.Debug("generating variant", "name", name, "alternatives", len(types))
	}
	return d
}

// declare records the package-level identifiers generated for variant v.
func (g *generator) declare(v string, idents ...string) {
	for _, id := range idents {
		if other, ok := g.globals[id]; ok {
			if other == v {
				g.addErr("variant %s: identifier %s is generated twice", v, id)
			} else {
				g.addErr("variant %s: identifier %s is also generated for variant %s", v, id, other)
			}
			continue
		}
		g.globals[id] = v
	}
}

var identRE = regexp.MustCompile(`[\p{L}_][\p{L}\p{Nd}_]*`)

// resultParam returns a name for the type parameter of the Match function
// that does not occur in any of the alternative types.
func resultParam(alts []*declfile.Alternative) string {
	used := make(map[string]bool)
	for _, a := range alts {
		for _, id := range identRE.FindAllString(a.Type, -1) {
			used[id] = true
		}
	}
	name := "R"
	for i := 0; used[name]; i++ {
		name = fmt.Sprintf("R%d", i)
	}
	return name
}

// joinOr formats a list of types as in "a, b or c".
func joinOr(types []string) string {
	n := len(types)
	if n == 1 {
		return types[0]
	}
	return strings.Join(types[:n-1], ", ") + " or " + types[n-1]
}

