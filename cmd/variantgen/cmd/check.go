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
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cuelabs.dev/go/variant/gen/gogen"
)

func newCheckCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <declaration file>",
		Short: "check a declaration file",
		Long: `check reports the errors in a declaration file without writing any code.

With --print, check also prints the declaration as YAML, with the default
names of the alternatives filled in.
`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runCheck),
	}
	cmd.Flags().BoolP(string(flagPrint), "p", false,
		"print the checked declaration")
	return cmd
}

func runCheck(cmd *Command, args []string) error {
	f := readDecl(cmd, args[0])

	// Name clashes between generated identifiers are only found by
	// generating the code.
	_, err := gogen.Generate(f, &gogen.Config{Logger: cmd.Logger()})
	exitOnErr(cmd, err, true)

	if !flagPrint.Bool(cmd) {
		return nil
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}
