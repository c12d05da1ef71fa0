package main

import (
	"fmt"
	"log"

	"github.com/kamikit/kami/pkg/engine"
	"github.com/kamikit/kami/pkg/kernel"
	"github.com/kamikit/kami/pkg/kernel/sdfx"
	"github.com/kamikit/kami/pkg/pattern"
	"github.com/kamikit/kami/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to faces.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// SheetThickness is the slab thickness used when previewing patterns.
const SheetThickness = 0.3

// App drives the evaluate-validate-tessellate pipeline. It is the
// backend a UI binds against.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format sent to a frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	FaceName string    `json:"faceName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for a frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating a pattern source.
type EvalResult struct {
	Pattern  *pattern.Pattern `json:"pattern"`
	Meshes   []MeshData       `json:"meshes"`
	Errors   []EvalErrorData  `json:"errors"`
	Warnings []EvalErrorData  `json:"warnings"`
}

// NewApp creates a new App with an engine and the sdfx kernel.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
	}
}

// Evaluate takes Lisp source and returns the pattern, its face meshes,
// and any errors or warnings. Validation errors block tessellation;
// warnings do not.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a crease pattern.
	p, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: err.Error(),
		})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	result.Pattern = p

	// Step 3: Validate the pattern. Errors block, warnings pass through.
	vr := pattern.ValidateAll(p)
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Message})
	}
	if len(vr.Errors) > 0 {
		for _, e := range vr.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e.Error()})
		}
		return result
	}

	// Step 4: Tessellate the pattern's faces into triangle meshes.
	meshes, err := tessellate.Tessellate(p, a.kernel, SheetThickness)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 5: Convert kernel meshes to the frontend MeshData format.
	for i, m := range meshes {
		color := colorPalette[i%len(colorPalette)]
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			FaceName: m.FaceName,
			Color:    color,
		})
	}

	// Step 6: Overlapping sheets are legal but worth flagging.
	for _, pair := range tessellate.Collisions(meshes, 0) {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Message: fmt.Sprintf("faces %s and %s overlap",
				meshes[pair[0]].FaceName, meshes[pair[1]].FaceName),
		})
	}

	return result
}
