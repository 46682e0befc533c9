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

package gogen

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	gotoken "go/token"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"cuelabs.dev/go/variant/gen/declfile"
)

var update = flag.Bool("update", false, "update the test output")

// TestGenerate runs the cases in testdata. Each archive holds a
// declaration file, named decl.cue or decl.yaml, and either a want
// section summarizing the declarations of the generated file or an
// error section holding a regular expression matching the error.
func TestGenerate(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.HasLen(files, 0)))

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			qt.Assert(t, qt.IsNil(err))

			var decl *txtar.File
			var want, wantErr *txtar.File
			for i := range a.Files {
				f := &a.Files[i]
				switch f.Name {
				case "decl.cue", "decl.yaml":
					decl = f
				case "want":
					want = f
				case "error":
					wantErr = f
				}
			}
			qt.Assert(t, qt.IsNotNil(decl), qt.Commentf("no declaration file"))

			df, err := declfile.Parse(decl.Data, decl.Name)
			qt.Assert(t, qt.IsNil(err))

			b, err := Generate(df, &Config{Source: decl.Name})
			if wantErr != nil {
				qt.Assert(t, qt.ErrorMatches(err, strings.TrimSpace(string(wantErr.Data))))
				return
			}
			qt.Assert(t, qt.IsNil(err), qt.Commentf("source:\n%s", b))

			got := summarize(t, b)
			if *update {
				if want == nil {
					a.Files = append(a.Files, txtar.File{Name: "want"})
					want = &a.Files[len(a.Files)-1]
				}
				want.Data = []byte(got)
				qt.Assert(t, qt.IsNil(os.WriteFile(file, txtar.Format(a), 0o666)))
				return
			}
			qt.Assert(t, qt.IsNotNil(want), qt.Commentf("no want section; run with -update"))
			if diff := cmp.Diff(string(want.Data), got); diff != "" {
				t.Errorf("unexpected declarations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	f := &declfile.File{
		Package: "p",
		Variants: map[string]*declfile.Variant{
			"V": {Alternatives: []*declfile.Alternative{{Name: "Int", Type: "int"}}},
		},
	}
	b, err := Generate(f, &Config{Source: "p.cue"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(bytes.HasPrefix(b, []byte("// Code generated by variantgen; DO NOT EDIT.\n// source: p.cue\n\npackage p\n"))))

	b, err = Generate(f, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(bytes.HasPrefix(b, []byte("// Code generated by variantgen; DO NOT EDIT.\n\npackage p\n"))))
	qt.Assert(t, qt.StringContains(string(b), "import (\n\t\"strconv\"\n\n\t\"cuelabs.dev/go/variant\"\n)\n"))
}

func TestVariantImport(t *testing.T) {
	f := &declfile.File{
		Package: "p",
		Variants: map[string]*declfile.Variant{
			"V": {Alternatives: []*declfile.Alternative{{Name: "Int", Type: "int"}}},
		},
	}
	b, err := Generate(f, &Config{VariantImport: "example.com/sum/v2"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(b), `variant "example.com/sum/v2"`))

	_, err = Generate(f, &Config{VariantImport: "example.com/bad path"})
	qt.Assert(t, qt.ErrorMatches(err, `invalid variant import path: .*`))
}

func TestImports(t *testing.T) {
	tests := []struct {
		testName      string
		imports       []string
		variantImport string
		want          [][]importSpec
	}{{
		testName: "None",
		want: [][]importSpec{
			{{Path: "strconv"}},
			{{Path: "cuelabs.dev/go/variant"}},
		},
	}, {
		testName: "SortsAfterVariant",
		imports:  []string{"time"},
		want: [][]importSpec{
			{{Path: "strconv"}, {Path: "time"}},
			{{Path: "cuelabs.dev/go/variant"}},
		},
	}, {
		testName: "SortsBeforeVariant",
		imports:  []string{"archive/tar", "bytes"},
		want: [][]importSpec{
			{{Path: "archive/tar"}, {Path: "bytes"}, {Path: "strconv"}},
			{{Path: "cuelabs.dev/go/variant"}},
		},
	}, {
		testName: "Duplicates",
		imports:  []string{"strconv", "example.com/a", "cuelabs.dev/go/variant"},
		want: [][]importSpec{
			{{Path: "strconv"}},
			{{Path: "cuelabs.dev/go/variant"}, {Path: "example.com/a"}},
		},
	}, {
		testName:      "RenamedVariant",
		imports:       []string{"aaa.org/x"},
		variantImport: "example.com/sum/v2",
		want: [][]importSpec{
			{{Path: "strconv"}},
			{{Path: "aaa.org/x"}, {Name: "variant", Path: "example.com/sum/v2"}},
		},
	}}
	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			g := &generator{Config: Config{VariantImport: DefaultVariantImport}}
			if test.variantImport != "" {
				g.VariantImport = test.variantImport
			}
			got := g.imports(&declfile.File{Imports: test.imports})
			qt.Assert(t, qt.IsNil(g.err))
			qt.Assert(t, qt.DeepEquals(got, test.want))
		})
	}
}

func TestResultParam(t *testing.T) {
	alts := func(types ...string) []*declfile.Alternative {
		var a []*declfile.Alternative
		for _, typ := range types {
			a = append(a, &declfile.Alternative{Type: typ})
		}
		return a
	}
	qt.Check(t, qt.Equals(resultParam(alts("int", "string")), "R"))
	qt.Check(t, qt.Equals(resultParam(alts("R", "[]Rune")), "R0"))
	qt.Check(t, qt.Equals(resultParam(alts("map[R0]R")), "R1"))
}

func TestJoinOr(t *testing.T) {
	qt.Check(t, qt.Equals(joinOr([]string{"int"}), "int"))
	qt.Check(t, qt.Equals(joinOr([]string{"int", "string"}), "int or string"))
	qt.Check(t, qt.Equals(joinOr([]string{"a.B", "int", "[]C"}), "a.B, int or []C"))
}

// summarize describes the package-level declarations of a Go file,
// one per line, without their bodies.
func summarize(t *testing.T, src []byte) string {
	fset := gotoken.NewFileSet()
	f, err := parser.ParseFile(fset, "out.go", src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err), qt.Commentf("source:\n%s", src))

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	add("package %s", f.Name.Name)

	var paths []string
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		qt.Assert(t, qt.IsNil(err))
		if imp.Name != nil {
			p = imp.Name.Name + " " + p
		}
		paths = append(paths, p)
	}
	slices.Sort(paths)
	add("import %s", strings.Join(paths, ", "))

	str := func(n ast.Node) string {
		var buf bytes.Buffer
		qt.Assert(t, qt.IsNil(printer.Fprint(&buf, fset, n)))
		return buf.String()
	}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			switch d.Tok {
			case gotoken.TYPE:
				if d.Doc != nil {
					for _, l := range strings.Split(strings.TrimSpace(d.Doc.Text()), "\n") {
						lines = append(lines, strings.TrimSpace("// "+l))
					}
				}
				for _, s := range d.Specs {
					s := s.(*ast.TypeSpec)
					typ := str(s.Type)
					if st, ok := s.Type.(*ast.StructType); ok {
						var fields []string
						for _, fld := range st.Fields.List {
							fields = append(fields, fld.Names[0].Name+" "+str(fld.Type))
						}
						typ = "struct{" + strings.Join(fields, "; ") + "}"
					}
					add("type %s %s", s.Name.Name, typ)
				}
			case gotoken.CONST:
				var names []string
				for _, s := range d.Specs {
					for _, n := range s.(*ast.ValueSpec).Names {
						names = append(names, n.Name)
					}
				}
				add("const %s", strings.Join(names, " "))
			}
		case *ast.FuncDecl:
			sig := strings.TrimPrefix(str(d.Type), "func")
			if d.Recv != nil {
				add("func (%s) %s%s", str(d.Recv.List[0].Type), d.Name.Name, sig)
			} else {
				add("func %s%s", d.Name.Name, sig)
			}
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
