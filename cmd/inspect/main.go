package main

import (
	"flag"
	"fmt"
	"os"

	"shape-tessellator/internal/config"
	"shape-tessellator/internal/meshstat"
	"shape-tessellator/internal/tess"
)

func main() {
	shape := flag.String("shape", "", "Shape kind: cube, cylinder, cone or sphere (default: built-in set)")
	a := flag.Int("a", 0, "First shape parameter")
	b := flag.Int("b", 0, "Second shape parameter")
	flag.Parse()

	shapes := config.DefaultShapes()
	if *shape != "" {
		kind, err := tess.ParseKind(*shape)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		shapes = []config.Shape{{Kind: kind, A: *a, B: *b}}
	}

	for _, s := range shapes {
		m, err := tess.Generate(s.Kind, s.A, s.B)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s:\n", s.Label())
		r := meshstat.Analyze(m)
		if err := r.Write(os.Stdout); err != nil {
			os.Exit(1)
		}
		if want := tess.ExpectedTriangles(s.Kind, s.A, s.B); want != r.Triangles {
			fmt.Printf("    WARNING: expected %d triangles\n", want)
		}
	}
}
