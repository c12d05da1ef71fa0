package pattern

import (
	"fmt"

	"github.com/kamikit/kami/pkg/geom"
)

// ValidationSeverity indicates whether a finding blocks further
// processing or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks tessellation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Crease   int    // index of the offending crease, -1 if pattern-level
	Message  string // human-readable description
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Crease < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] crease %d: %s", e.Severity, e.Crease, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Crease  int // index of the offending crease, -1 if pattern-level
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs all Tier 1 structural checks on the pattern and returns
// a slice of validation errors. An empty slice means the structure is
// sound. The function is read-only and never mutates the pattern.
func Validate(p *Pattern) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateReferences(p)...)
	errs = append(errs, validateDuplicateCreases(p)...)
	return errs
}

// ValidateAll runs all validation tiers (structural, geometric,
// advisory) and returns a ValidationResult with separated errors and
// warnings.
func ValidateAll(p *Pattern) ValidationResult {
	var result ValidationResult
	result.Errors = append(result.Errors, Validate(p)...)

	geomErrs, geomWarnings := validateGeometry(p)
	result.Errors = append(result.Errors, geomErrs...)
	result.Warnings = append(result.Warnings, geomWarnings...)

	result.Warnings = append(result.Warnings, validateAdvisory(p)...)
	return result
}

// ---------------------------------------------------------------------------
// Tier 1 — Structural validation
// ---------------------------------------------------------------------------

// validateReferences checks that every crease references existing,
// distinct points.
func validateReferences(p *Pattern) []ValidationError {
	var errs []ValidationError
	for i, c := range p.Creases {
		if c.A < 0 || c.A >= len(p.Points) || c.B < 0 || c.B >= len(p.Points) {
			errs = append(errs, ValidationError{
				Crease:   i,
				Message:  fmt.Sprintf("crease references missing point (%d-%d of %d points)", c.A, c.B, len(p.Points)),
				Severity: SeverityError,
			})
			continue
		}
		if c.A == c.B {
			errs = append(errs, ValidationError{
				Crease:   i,
				Message:  fmt.Sprintf("crease joins point %d to itself", c.A),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// creaseKey is a canonical key for an unordered point pair so that
// creases a-b and b-a are treated as the same crease.
type creaseKey struct {
	lo, hi int
}

func makeCreaseKey(c Crease) creaseKey {
	if c.A <= c.B {
		return creaseKey{lo: c.A, hi: c.B}
	}
	return creaseKey{lo: c.B, hi: c.A}
}

// validateDuplicateCreases checks that no two creases join the same pair
// of points.
func validateDuplicateCreases(p *Pattern) []ValidationError {
	var errs []ValidationError
	seen := make(map[creaseKey]int) // first crease that used this key

	for i, c := range p.Creases {
		key := makeCreaseKey(c)
		if first, exists := seen[key]; exists {
			errs = append(errs, ValidationError{
				Crease:   i,
				Message:  fmt.Sprintf("duplicate crease: points %d-%d already joined by crease %d", key.lo, key.hi, first),
				Severity: SeverityError,
			})
		} else {
			seen[key] = i
		}
	}
	return errs
}

// ---------------------------------------------------------------------------
// Tier 2 — Geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

// validateGeometry runs all Tier 2 geometric checks. It assumes Tier 1
// passed for the creases it inspects and skips any that did not.
func validateGeometry(p *Pattern) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	valid := make([]int, 0, len(p.Creases))
	for i, c := range p.Creases {
		if c.A < 0 || c.A >= len(p.Points) || c.B < 0 || c.B >= len(p.Points) || c.A == c.B {
			continue
		}
		valid = append(valid, i)
	}

	// Zero-length creases.
	for _, i := range valid {
		c := p.Creases[i]
		if p.Points[c.A].DistanceSquared(p.Points[c.B]) < geom.Epsilon {
			errs = append(errs, ValidationError{
				Crease:   i,
				Message:  fmt.Sprintf("crease between coincident points %d and %d", c.A, c.B),
				Severity: SeverityError,
			})
		}
	}

	// Crossing creases. Creases sharing an endpoint meet there by
	// construction and are not crossings.
	for a := 0; a < len(valid); a++ {
		for b := a + 1; b < len(valid); b++ {
			ca, cb := p.Creases[valid[a]], p.Creases[valid[b]]
			if sharesEndpoint(ca, cb) {
				continue
			}
			if geom.SegmentsCross(p.Segment(ca), p.Segment(cb)) {
				errs = append(errs, ValidationError{
					Crease:   valid[b],
					Message:  fmt.Sprintf("crease crosses crease %d; split both at the crossing", valid[a]),
					Severity: SeverityError,
				})
			}
		}
	}

	// Near-coincident points that were not merged.
	for i := 0; i < len(p.Points); i++ {
		for j := i + 1; j < len(p.Points); j++ {
			if d2 := p.Points[i].DistanceSquared(p.Points[j]); d2 >= geom.Epsilon && d2 < 100*geom.Epsilon {
				warnings = append(warnings, ValidationWarning{
					Crease:  -1,
					Message: fmt.Sprintf("points %d and %d are nearly coincident", i, j),
				})
			}
		}
	}

	return errs, warnings
}

func sharesEndpoint(a, b Crease) bool {
	return a.A == b.A || a.A == b.B || a.B == b.A || a.B == b.B
}

// ---------------------------------------------------------------------------
// Tier 3 — Advisory checks
// ---------------------------------------------------------------------------

// validateAdvisory flags constructions that are legal but usually
// unintended.
func validateAdvisory(p *Pattern) []ValidationWarning {
	var warnings []ValidationWarning

	for i := range p.Points {
		if p.Degree(i) == 0 {
			warnings = append(warnings, ValidationWarning{
				Crease:  -1,
				Message: fmt.Sprintf("point %d has no incident crease", i),
			})
		}
	}

	// A dangling non-border crease cannot be folded flat.
	for i, c := range p.Creases {
		if c.Kind == Border {
			continue
		}
		if c.A >= 0 && c.A < len(p.Points) && p.Degree(c.A) == 1 {
			warnings = append(warnings, ValidationWarning{
				Crease:  i,
				Message: fmt.Sprintf("%s crease dangles at point %d", c.Kind, c.A),
			})
		}
		if c.B >= 0 && c.B < len(p.Points) && p.Degree(c.B) == 1 {
			warnings = append(warnings, ValidationWarning{
				Crease:  i,
				Message: fmt.Sprintf("%s crease dangles at point %d", c.Kind, c.B),
			})
		}
	}

	return warnings
}
