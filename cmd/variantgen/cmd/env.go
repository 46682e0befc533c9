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
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"cuelabs.dev/go/variant/internal/variantdebug"
)

func newEnvCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "print the debug flags of the variant package",
		Long: `env prints the value of VARIANT_DEBUG and the debug flags it sets.

VARIANT_DEBUG holds a comma-separated list of name=value pairs, read by
programs using the variant package. Boolean flags may be given without a
value to set them. The flags are:

	strict  check after every operation that a variant owns exactly
	        one value when it is set and none when it is empty
	logops  log every operation at debug level through log/slog
`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runEnv),
	}
	return cmd
}

func runEnv(cmd *Command, args []string) error {
	env := os.Getenv(variantdebug.EnvVar)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s=%s\n", variantdebug.EnvVar, strconv.Quote(env))

	flags, err := variantdebug.Parse(env)
	for _, p := range flags.Pairs() {
		fmt.Fprintf(w, "\t%s\n", p)
	}
	exitOnErr(cmd, err, false)
	return nil
}
