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

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cuelabs.dev/go/variant/gen/gogen"
)

func newGenCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [-o file] <declaration file>",
		Short: "generate Go variant types",
		Long: `gen generates the Go variant types declared in a declaration file.

By default the output is written next to the declaration file, to a file
with the same base name and the suffix _variant.go: shapes.cue generates
shapes_variant.go. Use -o to name another file, or -o - to write to
standard output.
`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runGen),
	}
	addOutFlags(cmd.Flags())
	cmd.Flags().String(string(flagVariantImport), gogen.DefaultVariantImport,
		"import path of the variant package used by the generated code")
	return cmd
}

func runGen(cmd *Command, args []string) error {
	decl := args[0]
	f := readDecl(cmd, decl)

	out := flagOutFile.String(cmd)
	if out == "" {
		out = strings.TrimSuffix(decl, filepath.Ext(decl)) + "_variant.go"
	}
	filename := out
	if out == "-" {
		filename = f.Package + "_variant.go"
	}

	b, err := gogen.Generate(f, &gogen.Config{
		VariantImport: flagVariantImport.String(cmd),
		Source:        filepath.ToSlash(filepath.Base(decl)),
		Filename:      filename,
		Logger:        cmd.Logger(),
	})
	exitOnErr(cmd, err, true)

	if out == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	cmd.Logger().Debug("writing generated code", "file", out, "bytes", len(b))
	return os.WriteFile(out, b, 0o666)
}
