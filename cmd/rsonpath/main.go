// Command rsonpath counts matches of a restricted, descendant-only
// JSONPath query against a JSON document, without parsing the document
// into any value tree.
//
// Usage:
//
//	rsonpath '$..a..b..c' input.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/azoyan/rsonpath"
	"github.com/azoyan/rsonpath/align"
	"github.com/azoyan/rsonpath/internal/automaton"
	"github.com/azoyan/rsonpath/internal/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s QUERY FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	queryText, path := flag.Arg(0), flag.Arg(1)

	if !rsonpath.SupportedCPU() {
		log.Print("host CPU lacks AVX2; falling back to the scalar byte-scanning path")
	}

	q, err := parser.Parse(queryText)
	if err != nil {
		log.Fatalf("parsing query: %v", err)
	}

	in, err := align.NewFromFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	count := automaton.Compile(q).Count(in)
	fmt.Println(count)
}
