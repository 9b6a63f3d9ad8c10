// Command alic is the thin driver that wires pkg/compiler to the outside
// world: it opens the input file, parses the -D/-L/-o flags, runs the
// pipeline, and writes the backend IR and optional debug dumps. It carries
// none of the compiler's own logic; see pkg/compiler for the lexer, parser,
// type engine, symbol table, and code generator this wraps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"alic/pkg/compiler"
	"alic/pkg/utils"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: alic [-D debugfile] [-L flags] [-o outfile] infile\n")
	fmt.Fprintf(os.Stderr, "  -L takes a comma-joined subset of tok,sym,ast\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("alic: ")

	debugFile := flag.String("D", "", "write per-stage debug dumps to this file")
	dumpFlags := flag.String("L", "", "comma-joined subset of tok,sym,ast to dump (requires -D)")
	outFile := flag.String("o", "", "write generated IR to this file instead of stdout")
	flag.Usage = usage
	flag.Parse()

	if *dumpFlags != "" && *debugFile == "" {
		usage()
		log.Fatal("-L requires -D")
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	opts, err := parseDebugFlags(*dumpFlags)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(flag.Arg(0), *outFile, *debugFile, opts); err != nil {
		log.Fatal(err)
	}
}

// parseDebugFlags validates -L's comma-joined subset of tok,sym,ast.
func parseDebugFlags(raw string) (compiler.Debug, error) {
	var opts compiler.Debug
	if raw == "" {
		return opts, nil
	}
	for _, part := range strings.Split(raw, ",") {
		switch part {
		case "tok":
			opts.Tokens = true
		case "sym":
			opts.Symbols = true
		case "ast":
			opts.AST = true
		default:
			return opts, fmt.Errorf("unknown -L flag %q (want tok, sym, or ast)", part)
		}
	}
	return opts, nil
}

// run reads infile, resolves its absolute path for diagnostics, compiles
// it, and writes the generated IR and any requested debug dump to their
// destinations.
func run(infile, outfile, debugfile string, opts compiler.Debug) error {
	fullPath, _, err := utils.GetPathInfo(infile)
	if err != nil {
		return fmt.Errorf("alic: resolving %q: %w", infile, err)
	}

	src, err := os.ReadFile(infile)
	if err != nil {
		return fmt.Errorf("alic: reading %q: %w", fullPath, err)
	}

	result, err := compiler.Compile(infile, string(src), opts)
	if err != nil {
		return err
	}

	if err := writeOutput(outfile, result.IR); err != nil {
		return fmt.Errorf("alic: writing output: %w", err)
	}

	if debugfile != "" {
		if err := os.WriteFile(debugfile, []byte(result.Debug), 0o644); err != nil {
			return fmt.Errorf("alic: writing debug file %q: %w", debugfile, err)
		}
	}
	return nil
}

func writeOutput(outfile, ir string) error {
	if outfile == "" {
		_, err := fmt.Print(ir)
		return err
	}
	return os.WriteFile(outfile, []byte(ir), 0o644)
}
