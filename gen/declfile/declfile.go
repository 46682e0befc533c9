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

// Package declfile parses the declaration files read by variantgen.
//
// A declaration file lists variant types, each with an ordered list of
// alternatives. It may be written in CUE, JSON or YAML:
//
//	goPackage: "shapes"
//	imports: ["time"]
//	variants: Shape: alternatives: [
//		{type: "Circle"},
//		{type: "Rect"},
//		{name: "Elapsed", type: "time.Duration"},
//	]
package declfile

import (
	_ "embed"
	"fmt"
	gotoken "go/token"
	"maps"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/mod/module"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/parser"
	"cuelang.org/go/cue/token"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var declSchemaData []byte

// File is the decoded contents of a declaration file.
type File struct {
	Package  string              `json:"goPackage" yaml:"goPackage"`
	Imports  []string            `json:"imports,omitempty" yaml:"imports,omitempty"`
	Variants map[string]*Variant `json:"variants" yaml:"variants"`
}

// Variant declares one variant type.
type Variant struct {
	Doc          string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	Alternatives []*Alternative `json:"alternatives" yaml:"alternatives"`
}

// Alternative declares one alternative of a variant.
// After a successful Parse, Name is always set.
type Alternative struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type" yaml:"type"`
}

var fileSchema = func() cue.Value {
	ctx := cuecontext.New()
	schemav := ctx.CompileBytes(declSchemaData, cue.Filename("cuelabs.dev/go/variant/gen/declfile/schema.cue"))
	if err := schemav.Err(); err != nil {
		panic(fmt.Errorf("internal error: invalid declaration file schema: %v", errors.Details(err, nil)))
	}
	return schemav.LookupPath(cue.MakePath(cue.Def("#File")))
}()

// VariantNames returns the names of the declared variants in sorted order.
func (f *File) VariantNames() []string {
	return slices.Sorted(maps.Keys(f.Variants))
}

// Parse parses and checks the declaration file with the given contents.
// Files with a .yaml or .yml extension are read as YAML; all others as
// CUE, which includes JSON. The file name is used for error messages.
func Parse(data []byte, filename string) (*File, error) {
	file, err := parseSyntax(data, filename)
	if err != nil {
		return nil, errors.Wrapf(err, token.NoPos, "invalid declaration file syntax")
	}
	v := fileSchema.Context().BuildFile(file)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.Wrapf(err, token.NoPos, "invalid declaration file value")
	}
	v = v.Unify(fileSchema)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		// Schema errors refer to a schema the user may never have seen,
		// so only name the offending fields.
		if paths := badPaths(err); len(paths) > 0 {
			f := "fields"
			if len(paths) == 1 {
				f = "field"
			}
			return nil, fmt.Errorf("invalid declaration file %s: errors in the following %s: %s", filename, f, strings.Join(paths, ", "))
		}
		return nil, fmt.Errorf("invalid declaration file %s: %v", filename, errors.Details(err, nil))
	}
	var f File
	if err := v.Decode(&f); err != nil {
		return nil, errors.Wrapf(err, token.NoPos, "internal error: cannot decode into declfile.File")
	}
	if msgs := f.check(); len(msgs) > 0 {
		return nil, fmt.Errorf("invalid declaration file %s:\n\t%s", filename, strings.Join(msgs, "\n\t"))
	}
	return &f, nil
}

func parseSyntax(data []byte, filename string) (*ast.File, error) {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return yaml.Extract(filename, data)
	}
	return parser.ParseFile(filename, data)
}

var (
	// qualifierRE matches the package qualifiers in a Go type expression.
	qualifierRE = regexp.MustCompile(`([\p{L}_][\p{L}\p{Nd}_]*)\.`)

	// namedTypeRE matches a possibly qualified type name.
	namedTypeRE = regexp.MustCompile(`^(?:[\p{L}_][\p{L}\p{Nd}_]*\.)?([\p{L}_][\p{L}\p{Nd}_]*)$`)
)

// check verifies what the schema cannot, and fills in default names.
// It returns a description of each problem found.
func (f *File) check() []string {
	var errs []string
	addErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}
	if !gotoken.IsIdentifier(f.Package) {
		addErr("goPackage: %q is not a valid Go package name", f.Package)
	}

	imported := make(map[string]string) // package name -> import path
	for i, p := range f.Imports {
		if err := module.CheckImportPath(p); err != nil {
			addErr("imports[%d]: %v", i, err)
			continue
		}
		name := PackageName(p)
		if other, ok := imported[name]; ok {
			addErr("imports[%d]: %q and %q are both imported as %s", i, other, p, name)
			continue
		}
		imported[name] = p
	}

	if len(f.Variants) == 0 {
		addErr("variants: no variants declared")
	}
	used := make(map[string]bool)
	for _, vname := range f.VariantNames() {
		v := f.Variants[vname]
		byType := make(map[string]int)
		byName := make(map[string]int)
		for i, a := range v.Alternatives {
			where := fmt.Sprintf("variants.%s.alternatives[%d]", vname, i)
			typ := strings.TrimSpace(a.Type)
			a.Type = typ
			if strings.HasPrefix(typ, "*") {
				addErr("%s: alternative type %s is a pointer; alternatives hold values", where, typ)
				continue
			}
			for _, m := range qualifierRE.FindAllStringSubmatch(typ, -1) {
				q := m[1]
				used[q] = true
				if _, ok := imported[q]; !ok {
					addErr("%s: package %s in type %s is not imported", where, q, typ)
				}
			}
			if a.Name == "" {
				name, ok := deriveName(typ)
				if !ok {
					addErr("%s: cannot derive a name from type %s; set name", where, typ)
					continue
				}
				a.Name = name
			}
			key := strings.Join(strings.Fields(typ), "")
			if j, ok := byType[key]; ok {
				addErr("%s: type %s duplicates alternative %d", where, typ, j)
			} else {
				byType[key] = i
			}
			if j, ok := byName[a.Name]; ok {
				addErr("%s: name %s duplicates alternative %d", where, a.Name, j)
			} else {
				byName[a.Name] = i
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(imported)) {
		if !used[name] {
			addErr("imports: %q is not used by any alternative", imported[name])
		}
	}
	return errs
}

// deriveName returns the default alternative name for typ: the type name
// without its package qualifier, capitalized.
func deriveName(typ string) (string, bool) {
	m := namedTypeRE.FindStringSubmatch(typ)
	if m == nil {
		return "", false
	}
	name := cases.Title(language.Und, cases.NoLower).String(m[1])
	return name, gotoken.IsExported(name)
}

// PackageName returns the package name the package with the given import
// path is assumed to declare: the last path element, ignoring any major
// version suffix.
func PackageName(p string) string {
	if prefix, _, ok := module.SplitPathVersion(p); ok && prefix != "" {
		p = prefix
	}
	return path.Base(p)
}

func badPaths(err error) []string {
	paths := make(map[string]bool)
	for _, err := range errors.Errors(err) {
		if p := err.Path(); len(p) > 0 {
			paths[strings.Join(p, ".")] = true
		}
	}
	return slices.Sorted(maps.Keys(paths))
}
