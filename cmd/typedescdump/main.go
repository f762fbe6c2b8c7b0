// Copyright 2024-2026 The typedesc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command typedescdump inspects type descriptors from outside a running
// server: it can decode a file of concatenated descriptor frames (the shape
// a database dump embeds them in) and print it as an indented tree, or
// encode a YAML manifest of named fixture types and print each one's id and
// a hex dump of its encoded bytes.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wireproto/typedesc"
)

func main() {
	dumpPath := flag.String("dump", "", "decode a file of concatenated type descriptors and print the tree")
	fixturesPath := flag.String("fixtures", "", "encode a YAML manifest of named fixture types and print each id and hex dump")
	protoVersion := flag.String("proto-version", "0.12", "protocol version, as MAJOR.MINOR, governing shape/param wire width")
	flag.Parse()

	pv, err := parseVersion(*protoVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, "typedescdump:", err)
		os.Exit(2)
	}

	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case *dumpPath != "":
		if err := runDump(*dumpPath, pv, colorize); err != nil {
			fmt.Fprintln(os.Stderr, "typedescdump:", err)
			os.Exit(1)
		}
	case *fixturesPath != "":
		if err := runFixtures(*fixturesPath, pv, colorize); err != nil {
			fmt.Fprintln(os.Stderr, "typedescdump:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: typedescdump -dump FILE | -fixtures FILE [-proto-version M.m]")
		os.Exit(2)
	}
}

func parseVersion(s string) (typedesc.Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return typedesc.Version{}, fmt.Errorf("invalid proto version %q, want MAJOR.MINOR", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return typedesc.Version{}, fmt.Errorf("invalid proto version %q: %w", s, err)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return typedesc.Version{}, fmt.Errorf("invalid proto version %q: %w", s, err)
	}
	return typedesc.Version{Major: maj, Minor: min}, nil
}

func runDump(path string, pv typedesc.Version, colorize bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dump: %w", err)
	}

	n, err := typedesc.Parse(data, pv)
	if err != nil {
		return fmt.Errorf("parse dump: %w", err)
	}

	printTree(os.Stdout, n, 0, colorize)
	return nil
}

func runFixtures(path string, pv typedesc.Version, colorize bool) error {
	m, err := loadManifest(path)
	if err != nil {
		return err
	}

	schema, order, err := buildSchema(m)
	if err != nil {
		return err
	}

	for _, name := range order {
		t, _ := schema.Get(name)
		out, id, err := typedesc.NewEncoder(schema).Describe(t, nil, nil, pv)
		if err != nil {
			return fmt.Errorf("describe %q: %w", name, err)
		}

		if colorize {
			fmt.Printf("\033[1m%s\033[0m  id=%s\n", name, id)
		} else {
			fmt.Printf("%s  id=%s\n", name, id)
		}
		fmt.Println(hex.Dump(out))
	}
	return nil
}

func printTree(w *os.File, n typedesc.Node, depth int, colorize bool) {
	indent := strings.Repeat("  ", depth)
	label := nodeLabel(n)
	if colorize {
		fmt.Fprintf(w, "%s\033[36m%s\033[0m  id=%s\n", indent, label, n.ContentID())
	} else {
		fmt.Fprintf(w, "%s%s  id=%s\n", indent, label, n.ContentID())
	}

	switch v := n.(type) {
	case *typedesc.SetNode:
		printTree(w, v.Subtype, depth+1, colorize)
	case *typedesc.ScalarNode:
		printTree(w, v.Subtype, depth+1, colorize)
	case *typedesc.ArrayNode:
		printTree(w, v.Subtype, depth+1, colorize)
	case *typedesc.TupleNode:
		for _, f := range v.Fields {
			printTree(w, f, depth+1, colorize)
		}
	case *typedesc.NamedTupleNode:
		for i, f := range v.Fields {
			fmt.Fprintf(w, "%s  %s:\n", indent, v.Names[i])
			printTree(w, f, depth+2, colorize)
		}
	case *typedesc.ShapeNode:
		for _, f := range v.Fields {
			fmt.Fprintf(w, "%s  %s (%s):\n", indent, f.Name, f.Cardinality)
			printTree(w, f.Type, depth+2, colorize)
		}
	}
}

func nodeLabel(n typedesc.Node) string {
	switch n.(type) {
	case *typedesc.SetNode:
		return "set"
	case *typedesc.ShapeNode:
		return "shape"
	case *typedesc.BaseScalarNode:
		return "base_scalar"
	case *typedesc.ScalarNode:
		return "scalar"
	case *typedesc.TupleNode:
		return "tuple"
	case *typedesc.NamedTupleNode:
		return "named_tuple"
	case *typedesc.ArrayNode:
		return "array"
	case *typedesc.EnumNode:
		return "enum"
	default:
		return "unknown"
	}
}
