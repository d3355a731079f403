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

package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// Render emits the Go source of the tables for package pkg.
// filename is used only for formatting diagnostics.
func Render(pkg, filename string, p *Plan) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "// stages lists the block swaps in execution order, 16-bit blocks first.\n")
	fmt.Fprintf(&buf, "var stages = [%d]stage{\n", len(p.Stages))
	for _, s := range p.Stages {
		fmt.Fprintf(&buf, "\t{\n")
		fmt.Fprintf(&buf, "\t\tmask: 0x%08X,\n", s.Mask)
		fmt.Fprintf(&buf, "\t\tshift: %d,\n", s.Shift)
		fmt.Fprintf(&buf, "\t\thi: %s,\n", lanesLiteral(s.Hi))
		fmt.Fprintf(&buf, "\t\tlo: %s,\n", lanesLiteral(s.Lo))
		fmt.Fprintf(&buf, "\t},\n")
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// finalHi and finalLo restore ascending row order after the last stage.\n")
	fmt.Fprintf(&buf, "var (\n")
	fmt.Fprintf(&buf, "\tfinalHi = %s\n", lanesLiteral(p.FinalHi))
	fmt.Fprintf(&buf, "\tfinalLo = %s\n", lanesLiteral(p.FinalLo))
	fmt.Fprintf(&buf, ")\n")

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

func lanesLiteral(idx [vectorLanes]int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("[%d]uint8{%s}", vectorLanes, strings.Join(parts, ", "))
}
