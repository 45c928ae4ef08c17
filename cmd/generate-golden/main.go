package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/agbru/bigmod/internal/bigint"
	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/reference"
)

// GoldenCase is one vector of the golden file: parameters, operands and the
// outcome of every operation.
type GoldenCase struct {
	Name    string                  `json:"name"`
	Base    int                     `json:"base"`
	Size    int                     `json:"size"`
	A       string                  `json:"a"`
	B       string                  `json:"b"`
	M       string                  `json:"m"`
	Exp     uint64                  `json:"exp"`
	Results map[string]GoldenResult `json:"results"`
}

// GoldenResult holds the engine digits or error and the exact value.
type GoldenResult struct {
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
	Exact string `json:"exact,omitempty"`
}

type vector struct {
	name       string
	base, size int
	a, b, m    int64
	exp        uint64
}

// targets mixes moduli whose digits are all non-zero, where the engine
// produces values, with the sample operands whose reductions all fail.
var targets = []vector{
	{"decimal-9999", 10, 4, 1234, 5678, 9999, 3},
	{"decimal-2222", 10, 4, 8765, 4321, 2222, 10},
	{"decimal-1111", 10, 4, 1234, 5678, 1111, 3},
	{"decimal-3333", 10, 4, 9, 7, 3333, 2},
	{"hex", 16, 4, 0xBEEF, 0x1234, 0x1111, 5},
	{"binary", 2, 8, 0b11011010, 0b10110111, 0b11111111, 7},
	{"base1000", 1000, 3, 123456789, 987654, 111111111, 4},
	{"zero-a", 10, 4, 0, 5, 1234, 3},
	{"sample", 10, 8, 12345, 67890, 100, 3},
}

func main() {
	outputDir := flag.String("out", "internal/calc/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "calc_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Println("Generating golden data...")
	data, err := generate(calc.NewDefaultRegistry(), reference.BigOracle{}, targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating vectors: %v\n", err)
		os.Exit(1)
	}
	if err := write(file, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

func generate(registry *calc.Registry, oracle reference.Oracle, vectors []vector) ([]GoldenCase, error) {
	ops, err := registry.Resolve(calc.AllOperations)
	if err != nil {
		return nil, err
	}

	data := make([]GoldenCase, 0, len(vectors))
	for _, v := range vectors {
		p, err := bigint.NewParams(v.base, v.size)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}
		a, b, m := big.NewInt(v.a), big.NewInt(v.b), big.NewInt(v.m)
		in := calc.Operands{A: p.FromBig(a), B: p.FromBig(b), M: p.FromBig(m), Exp: v.exp}

		gc := GoldenCase{
			Name: v.name, Base: v.base, Size: v.size,
			A: a.String(), B: b.String(), M: m.String(), Exp: v.exp,
			Results: make(map[string]GoldenResult, len(ops)),
		}
		for _, op := range ops {
			var r GoldenResult
			if got, err := op.Apply(context.Background(), in); err != nil {
				r.Error = err.Error()
			} else {
				r.Value = got.DigitString()
			}
			if exact, err := oracle.Evaluate(op.Name(), a, b, m, v.exp, p); err == nil {
				r.Exact = exact.String()
			}
			gc.Results[op.Name()] = r
		}
		data = append(data, gc)
		fmt.Printf("Generated %s\n", v.name)
	}
	return data, nil
}

func write(w io.Writer, data []GoldenCase) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
