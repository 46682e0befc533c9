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

// Package variantdebug holds the VARIANT_DEBUG flags.
package variantdebug

import (
	"log/slog"
	"sync"

	"cuelabs.dev/go/variant/internal/envflag"
)

// EnvVar is the environment variable holding the flags.
const EnvVar = "VARIANT_DEBUG"

// Flags holds the set of VARIANT_DEBUG flags. It is initialized by Init.
var Flags Config

// Config holds the known VARIANT_DEBUG flags.
//
// When adding, deleting, or modifying entries below,
// update the help text of the variantgen env command as well.
type Config struct {
	// Strict verifies after every operation that a variant owns exactly
	// one value when it is set and none when it is empty.
	Strict bool

	// LogOps logs every operation on a variant at debug level
	// through the default slog logger.
	LogOps bool
}

// Init initializes Flags from VARIANT_DEBUG. Only the first call parses
// the environment; later calls return the same error, if any.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	err := envflag.Init(&Flags, EnvVar)
	if err != nil {
		slog.Warn("ignoring malformed debug flags", "error", err)
	}
	return err
})

// Get returns Flags, calling Init first. Operations on variants cannot
// return errors, so a malformed VARIANT_DEBUG is only logged by Init; the
// flags that could be parsed still apply.
func Get() Config {
	_ = Init()
	return Flags
}

// Names returns the names of the known flags.
func Names() []string {
	return envflag.Names[Config]()
}

// Pairs returns the flags in c as name=value pairs.
func (c Config) Pairs() []string {
	return envflag.Format(c)
}

// Parse returns the flags described by env, in the format of VARIANT_DEBUG,
// without touching Flags.
func Parse(env string) (Config, error) {
	var c Config
	err := envflag.Parse(&c, env)
	return c, err
}
