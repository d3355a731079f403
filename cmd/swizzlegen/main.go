// Copyright 2025 go-highway Authors
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

// Command swizzlegen generates the lane permutation tables of the 32x32 bit
// matrix transpose.
//
// Usage:
//
//	swizzlegen --output zz_swizzle_tables.go --pkg bitmatrix
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/swizzlegen --output zz_swizzle_tables.go --pkg bitmatrix
//
// The tables follow from the row-pairing rule in BuildPlan.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var (
	output  = pflag.StringP("output", "o", "zz_swizzle_tables.go", "Output Go file")
	pkgName = pflag.String("pkg", "bitmatrix", "Package name of the generated file")
	verbose = pflag.BoolP("verbose", "v", false, "Log every generated stage")
)

func main() {
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log, *output, *pkgName); err != nil {
		log.Error().Err(err).Msg("swizzlegen failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, path, pkg string) error {
	if pkg == "" {
		return errors.New("--pkg must not be empty")
	}

	plan, err := BuildPlan()
	if err != nil {
		return fmt.Errorf("building plan: %w", err)
	}
	for _, s := range plan.Stages {
		log.Debug().
			Int("shift", s.Shift).
			Str("mask", fmt.Sprintf("0x%08X", s.Mask)).
			Ints("hi", s.Hi[:]).
			Ints("lo", s.Lo[:]).
			Msg("stage")
	}

	src, err := Render(pkg, path, plan)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info().Str("output", path).Int("stages", len(plan.Stages)).Msg("wrote swizzle tables")
	return nil
}
