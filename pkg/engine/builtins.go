package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/involute/pkg/profile"
	"github.com/chazu/involute/pkg/report"
	"github.com/chazu/involute/pkg/spline"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms involute Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: tolerance-class -> tolerance_class
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

// sexpCase wraps a *Case so it can be returned from `spline` and consumed
// by `profile` and `report`.
type sexpCase struct {
	c *Case
}

func (s *sexpCase) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(case %q z=%d m=%g)", s.c.Name, s.c.Input.Teeth, s.c.Input.Module)
}
func (s *sexpCase) Type() *zygo.RegisteredType { return nil }

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
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
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

// toInt extracts an int from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_flat) and plain strings ("flat").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toRootType converts a keyword or string to a spline.RootType. Unknown
// names pass through so the calculator reports its named error.
func toRootType(s zygo.Sexp) (spline.RootType, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return "", fmt.Errorf("expected root keyword (:flat, :fillet): %w", err)
	}
	return spline.RootType(name), nil
}

// toCase extracts a *Case from a sexpCase.
func toCase(s zygo.Sexp) (*Case, error) {
	if ref, ok := s.(*sexpCase); ok {
		return ref.c, nil
	}
	return nil, fmt.Errorf("expected spline case, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// defaultProfilePoints is the sample count per involute curve when a script
// does not pass :points.
const defaultProfilePoints = 80

// registerBuiltins installs the involute DSL builtins into a zygomys
// environment. The builtins operate on the provided Session, populating it
// during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, session *Session) {

	// -----------------------------------------------------------------------
	// (spline "name" :module 2 :teeth 20 :angle 30 :root :flat
	//                :class 5 :length 50 :deviation -20 :clearance 0.1)
	// -----------------------------------------------------------------------
	env.AddFunction("spline", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("spline requires a name as first argument")
		}
		caseName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spline: name: %w", err)
		}

		in := spline.Input{
			RootType:            spline.RootFlat,
			FormClearanceFactor: 0.1,
		}

		if v, ok := pa.kw["module"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: module: %w", err)
			}
			in.Module = f
		}
		if v, ok := pa.kw["teeth"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: teeth: %w", err)
			}
			in.Teeth = n
		}
		if v, ok := pa.kw["angle"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: angle: %w", err)
			}
			in.PressureAngle = f
		}
		if v, ok := pa.kw["root"]; ok {
			r, err := toRootType(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: root: %w", err)
			}
			in.RootType = r
		}
		if v, ok := pa.kw["class"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: class: %w", err)
			}
			in.ToleranceClass = n
		}
		if v, ok := pa.kw["length"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: length: %w", err)
			}
			in.Length = f
		}
		if v, ok := pa.kw["deviation"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: deviation: %w", err)
			}
			in.Deviation = f
		}
		if v, ok := pa.kw["clearance"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("spline: clearance: %w", err)
			}
			in.FormClearanceFactor = f
		}

		res, err := spline.Compute(in)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spline %q: %w", caseName, err)
		}

		c := &Case{Name: caseName, Input: in, Result: res}
		if err := session.Add(c); err != nil {
			return zygo.SexpNull, fmt.Errorf("spline: %w", err)
		}

		return &sexpCase{c: c}, nil
	})

	// -----------------------------------------------------------------------
	// (profile (spline ...) :points 80)
	// -----------------------------------------------------------------------
	env.AddFunction("profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("profile requires a spline case as first argument")
		}
		c, err := toCase(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("profile: %w", err)
		}

		points := defaultProfilePoints
		if v, ok := pa.kw["points"]; ok {
			points, err = toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("profile: points: %w", err)
			}
		}

		d, err := profile.Generate(c.Result, points)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("profile %q: %w", c.Name, err)
		}
		c.Profile = d

		return &sexpCase{c: c}, nil
	})

	// -----------------------------------------------------------------------
	// (report (spline ...))
	// -----------------------------------------------------------------------
	env.AddFunction("report", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("report requires a spline case argument")
		}
		c, err := toCase(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("report: %w", err)
		}
		return &zygo.SexpStr{S: report.String(c.Result)}, nil
	})
}
