package scene

import "fmt"

// ValidationSeverity indicates whether a finding blocks rendering or is
// merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks rendering
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
	ID       ObjectID           // offending construct (zero if scene-level)
	Name     string             // construct name, if any
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Name, e.Message)
	case !e.ID.IsZero():
		return fmt.Sprintf("[%s] construct %s: %s", e.Severity, e.ID.Short(), e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	ID      ObjectID
	Name    string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether there are no blocking errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Validate checks s and separates blocking errors from warnings. It never
// mutates the scene.
func Validate(s *Scene) ValidationResult {
	var findings []ValidationError
	findings = append(findings, validateNames(s)...)
	findings = append(findings, validateShapes(s)...)
	findings = append(findings, validateVertices(s)...)

	var result ValidationResult
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				ID:      f.ID,
				Name:    f.Name,
				Message: f.Message,
			})
			continue
		}
		result.Errors = append(result.Errors, f)
	}
	return result
}

// validateNames reports every construct reusing an earlier name.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)
	for _, c := range s.Constructs {
		if c.Name == "" {
			continue
		}
		if seen[c.Name] {
			errs = append(errs, ValidationError{
				ID:       c.ID,
				Name:     c.Name,
				Message:  fmt.Sprintf("duplicate name %q", c.Name),
				Severity: SeverityError,
			})
		}
		seen[c.Name] = true
	}
	return errs
}

// validateShapes checks that each construct has enough vertices for its
// kind.
func validateShapes(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, c := range s.Constructs {
		n := len(c.Vertices)
		switch {
		case n == 0:
			errs = append(errs, ValidationError{
				ID:       c.ID,
				Name:     c.Name,
				Message:  fmt.Sprintf("%s construct has no vertices", c.Kind),
				Severity: SeverityWarning,
			})
		case c.Kind == KindSegments && n%2 != 0:
			errs = append(errs, ValidationError{
				ID:       c.ID,
				Name:     c.Name,
				Message:  fmt.Sprintf("segments need an even vertex count, got %d", n),
				Severity: SeverityError,
			})
		case c.Kind == KindStrip && n < 2:
			errs = append(errs, ValidationError{
				ID:       c.ID,
				Name:     c.Name,
				Message:  "strip needs at least 2 vertices",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateVertices flags constructs holding non-finite vertices, such as
// the result of intersecting parallel lines. Those vertices are skipped
// when rendering.
func validateVertices(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, c := range s.Constructs {
		invalid := 0
		for _, v := range c.Vertices {
			if !v.IsValid() {
				invalid++
			}
		}
		if invalid > 0 {
			errs = append(errs, ValidationError{
				ID:       c.ID,
				Name:     c.Name,
				Message:  fmt.Sprintf("%d of %d vertices are not finite", invalid, len(c.Vertices)),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}
