package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/kamikit/kami/pkg/fold"
	"github.com/kamikit/kami/pkg/geom"
	"github.com/kamikit/kami/pkg/pattern"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Kami Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: circle-cross -> circle_cross
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPointRef wraps a pattern point index so it can be passed between builtins.
type sexpPointRef struct {
	index int
	pat   *pattern.Pattern
}

func (p *sexpPointRef) SexpString(ps *zygo.PrintState) string {
	if p.pat != nil && p.index >= 0 && p.index < len(p.pat.Points) {
		pt := p.pat.Points[p.index]
		return fmt.Sprintf("(point %g %g)", pt[0], pt[1])
	}
	return fmt.Sprintf("(pointref %d)", p.index)
}
func (p *sexpPointRef) Type() *zygo.RegisteredType { return nil }

// sexpCreaseRef wraps a pattern crease index.
type sexpCreaseRef struct {
	index int
}

func (c *sexpCreaseRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(creaseref %d)", c.index)
}
func (c *sexpCreaseRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
// A keyword naming a crease kind stands alone; any other keyword takes
// the following value.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if _, isKind := creaseKinds[name]; isKind {
				result.kw[name] = zygo.SexpNull
				i++
				continue
			}
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toPointRef extracts a point index from a sexpPointRef.
func toPointRef(s zygo.Sexp) (int, error) {
	if ref, ok := s.(*sexpPointRef); ok {
		return ref.index, nil
	}
	return 0, fmt.Errorf("expected point reference, got %T (%s)", s, s.SexpString(nil))
}

// creaseKinds maps DSL keywords to crease assignments.
var creaseKinds = map[string]pattern.CreaseKind{
	"border":   pattern.Border,
	"mountain": pattern.Mountain,
	"valley":   pattern.Valley,
	"flat":     pattern.Flat,
}

// toCreaseKind picks the crease kind named by a standalone keyword in pa,
// defaulting to flat when none is given.
func toCreaseKind(pa kwArgs) (pattern.CreaseKind, error) {
	found := false
	kind := pattern.Flat
	for name, k := range creaseKinds {
		if _, ok := pa.kw[name]; !ok {
			continue
		}
		if found {
			return 0, fmt.Errorf("conflicting crease kinds given")
		}
		kind = k
		found = true
	}
	return kind, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Kami DSL builtins into a zygomys environment.
// The builtins operate on the provided Pattern, populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, p *pattern.Pattern) {

	// -----------------------------------------------------------------------
	// (point 100 50)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("point requires exactly 2 coordinates, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: y: %w", err)
		}
		return &sexpPointRef{index: p.AddPoint(x, y), pat: p}, nil
	})

	// -----------------------------------------------------------------------
	// (crease a b :mountain)
	// -----------------------------------------------------------------------
	env.AddFunction("crease", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("crease requires 2 point references, got %d", len(pa.positional))
		}
		a, err := toPointRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crease: from: %w", err)
		}
		b, err := toPointRef(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crease: to: %w", err)
		}
		kind, err := toCreaseKind(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("crease: %w", err)
		}
		return &sexpCreaseRef{index: p.AddCrease(a, b, kind)}, nil
	})

	// -----------------------------------------------------------------------
	// (border a b c d ...) convenience: border creases around a cycle.
	// -----------------------------------------------------------------------
	env.AddFunction("border", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 3 {
			return zygo.SexpNull, fmt.Errorf("border requires at least 3 points, got %d", len(args))
		}
		idx := make([]int, len(args))
		for i, a := range args {
			pi, err := toPointRef(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("border: point %d: %w", i, err)
			}
			idx[i] = pi
		}
		for i := range idx {
			p.AddCrease(idx[i], idx[(i+1)%len(idx)], pattern.Border)
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (circle-cross a ra b rb) -> list of the two crossing points.
	//
	// Registered as "circle_cross"; the preprocessor converts the
	// kebab-case call in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("circle_cross", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("circle-cross requires center, radius, center, radius")
		}
		a, err := toPointRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-cross: first center: %w", err)
		}
		ra, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-cross: first radius: %w", err)
		}
		b, err := toPointRef(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-cross: second center: %w", err)
		}
		rb, err := toFloat64(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-cross: second radius: %w", err)
		}

		pts, err := fold.CircleCross(p.Points[a], ra, p.Points[b], rb)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-cross: %w", err)
		}

		refs := make([]zygo.Sexp, 2)
		for i, pt := range pts {
			refs[i] = &sexpPointRef{index: p.AddPoint(pt[0], pt[1]), pat: p}
		}
		return env.NewSexpArray(refs), nil
	})

	// -----------------------------------------------------------------------
	// (bisect a b c :len 40 :valley) -> crease along the angle bisector
	// at b, ending at a new point :len away.
	// -----------------------------------------------------------------------
	env.AddFunction("bisect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("bisect requires 3 point references, got %d", len(pa.positional))
		}
		idx := make([]int, 3)
		for i, s := range pa.positional {
			pi, err := toPointRef(s)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("bisect: point %d: %w", i, err)
			}
			idx[i] = pi
		}

		length := 1.0
		if v, ok := pa.kw["len"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("bisect: len: %w", err)
			}
			length = f
		}
		kind, err := toCreaseKind(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bisect: %w", err)
		}

		dir, err := fold.CreaseDir(p.Points[idx[0]], p.Points[idx[1]], p.Points[idx[2]])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bisect: %w", err)
		}

		corner := p.Points[idx[1]]
		tip := corner.Add(dir.Scale(length))
		tipIdx := p.AddPoint(tip[0], tip[1])
		p.AddCrease(idx[1], tipIdx, kind)
		return &sexpPointRef{index: tipIdx, pat: p}, nil
	})

	// -----------------------------------------------------------------------
	// (fill-quad a b c d :mountain) -> diagonal crease splitting the quad
	// into two consistently wound triangles.
	// -----------------------------------------------------------------------
	env.AddFunction("fill_quad", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 4 {
			return zygo.SexpNull, fmt.Errorf("fill-quad requires 4 point references, got %d", len(pa.positional))
		}
		idx := make([]int, 4)
		var quad [4]geom.Vec
		for i, s := range pa.positional {
			pi, err := toPointRef(s)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-quad: point %d: %w", i, err)
			}
			idx[i] = pi
			quad[i] = p.Points[pi]
		}
		kind, err := toCreaseKind(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fill-quad: %w", err)
		}

		tris, err := fold.QuadSplit(quad)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fill-quad: %w", err)
		}

		// The diagonal is the vertex pair shared by both halves.
		da, db := idx[0], idx[2]
		if !triangleUses(tris[0], quad[0]) || !triangleUses(tris[1], quad[0]) {
			da, db = idx[1], idx[3]
		}
		return &sexpCreaseRef{index: p.AddCrease(da, db, kind)}, nil
	})
}

// triangleUses reports whether one of the triangle's vertices coincides
// with pt.
func triangleUses(t geom.Triangle, pt geom.Vec) bool {
	for _, v := range t.Points() {
		if v.DistanceSquared(pt) < geom.Epsilon {
			return true
		}
	}
	return false
}
