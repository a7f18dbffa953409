// Package engine evaluates geometry scripts. It wraps zygomys in a
// sandboxed environment with geometry builtins and produces a scene from
// user source code.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/scene"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result bundles the output of a successful evaluation.
type Result struct {
	Scene      *scene.Scene
	Value      string // printed value of the last expression
	Validation scene.ValidationResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the hard limit for a single evaluation.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithTolerance sets the epsilon used by parallelism and intersection
// builtins.
func WithTolerance(eps float64) Option {
	return func(e *Engine) { e.tol = algebra.NewEpsilonTolerance(eps) }
}

// WithPalette sets the colours assigned to constructs recorded without an
// explicit :color.
func WithPalette(p []scene.Color) Option {
	return func(e *Engine) { e.palette = p }
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each call to Evaluate creates a fresh sandboxed environment for
// determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	timeout time.Duration
	tol     algebra.Tolerance[float64]
	palette []scene.Color
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: EvalTimeout,
		tol:     algebra.DefaultTolerance[float64](),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs source and returns the scene it recorded.
//
// Return semantics:
//   - On success: returns result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	Logger().Debug("engine: evaluate", "generation", gen, "bytes", len(source))

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				Logger().Warn("engine: panic during evaluation", "generation", gen, "panic", r)
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source, gen)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, e.timeout, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string, gen uint64) (*Result, []EvalError, error) {
	s := scene.New()
	s.Version = gen

	// Empty source is a valid program that produces an empty scene.
	if strings.TrimSpace(source) == "" {
		return &Result{Scene: s, Validation: scene.Validate(s)}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, &builder{scene: s, tol: e.tol, palette: e.palette})

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}

	val, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	res := &Result{Scene: s, Validation: scene.Validate(s)}
	if val != nil {
		res.Value = val.SexpString(nil)
	}
	Logger().Debug("engine: evaluated",
		"generation", gen,
		"constructs", s.Len(),
		"vertices", s.VertexCount(),
		"errors", len(res.Validation.Errors))
	return res, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
