package main

import (
	"log"
	"os"
)

// demoSource is evaluated when no pattern file is given.
const demoSource = `
(def size 100)
(def a (point 0 0))
(def b (point size 0))
(def c (point size size))
(def d (point 0 size))
(border a b c d)
(crease a c :mountain)
`

func main() {
	log.SetFlags(0)

	source := demoSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("kami: %v", err)
		}
		source = string(data)
	}

	app := NewApp()
	result := app.Evaluate(source)

	for _, e := range result.Errors {
		if e.Line > 0 {
			log.Printf("error: line %d: %s", e.Line, e.Message)
		} else {
			log.Printf("error: %s", e.Message)
		}
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w.Message)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}

	log.Printf("%d points, %d creases, %d faces",
		len(result.Pattern.Points), len(result.Pattern.Creases), len(result.Meshes))
	for _, m := range result.Meshes {
		log.Printf("  %s: %d vertices, %d triangles",
			m.FaceName, len(m.Vertices)/3, len(m.Indices)/3)
	}
}
