// Command corpusgen aggregates labelled 对-construction instances into
// the corpus JSON table consumed by duilens.
//
// Input is TSV, one labelled instance per line:
//
//	predicate<TAB>category
//	predicate<TAB>category<TAB>count
//
// Categories are the six codes (DA, SI, MS, ABT, EVAL, DISP). Blank
// lines and # comments are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ppiankov/duilens/internal/corpus"
	"github.com/ppiankov/duilens/internal/model"
)

func main() {
	in := flag.String("in", "", "input TSV path (default: stdin)")
	out := flag.String("out", "corpus.json", "output JSON path")
	flag.Parse()

	var reader *os.File
	if *in == "" {
		reader = os.Stdin
	} else {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open input: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	builder := corpus.NewBuilder()
	instances, skipped := 0, 0

	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			fmt.Fprintf(os.Stderr, "Warning: line %d: expected predicate<TAB>category, skipping\n", lineNo)
			skipped++
			continue
		}

		predicate := strings.TrimSpace(fields[0])
		cat := model.Category(strings.ToUpper(strings.TrimSpace(fields[1])))
		if predicate == "" || !cat.IsValid() {
			fmt.Fprintf(os.Stderr, "Warning: line %d: invalid predicate or category %q, skipping\n", lineNo, fields[1])
			skipped++
			continue
		}

		count := 1
		if len(fields) >= 3 {
			n, err := strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "Warning: line %d: invalid count %q, skipping\n", lineNo, fields[2])
				skipped++
				continue
			}
			count = n
		}

		builder.AddCount(predicate, cat, count)
		instances += count
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read input: %v\n", err)
		os.Exit(1)
	}

	table := builder.Build()
	data, err := table.JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: serialize table: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("✓ Aggregated %d instances into %d predicates (%d lines skipped)\n", instances, table.Len(), skipped)
	fmt.Printf("✓ Wrote %s\n", *out)
}
