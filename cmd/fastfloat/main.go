// Command fastfloat batch-verifies a newline-delimited file of
// decimal literals: every line is parsed through the fast driver and,
// independently, through the arbitrary-precision slow path, and any
// disagreement is reported.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/codedude/fastfloat/internal/corpus"
	"github.com/codedude/fastfloat/internal/fastfloat"
)

func main() {
	input := flag.String("in", "", "path to a newline-delimited file of decimal literals")
	nThreads := flag.Int("threads", runtime.NumCPU(), "number of worker goroutines")
	useMmap := flag.Bool("mmap", true, "mmap the input file instead of reading it into memory")
	verbose := flag.Bool("v", false, "print a summary and CPU diagnostics")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -in")
	}

	var reader corpus.Reader
	if *useMmap {
		reader = corpus.NewMmapReader()
	} else {
		reader = corpus.NewDiskReader()
	}
	if err := reader.Open(*input); err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	if *verbose {
		fmt.Println("cpu:", fastfloat.HostFeatures())
	}

	result, err := corpus.Run(reader, corpus.Options{NThreads: *nThreads, Verbose: *verbose})
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range result.Mismatch {
		fmt.Printf("mismatch %q: fast=%v slow=%v\n", m.Literal, m.Fast, m.Slow)
	}
	if len(result.Mismatch) > 0 || result.Malformed > 0 {
		log.Fatalf("%d mismatches, %d malformed out of %d lines (%d unique)",
			len(result.Mismatch), result.Malformed, result.Lines, result.Unique)
	}
}
