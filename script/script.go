package script

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// evalTimeout bounds a single guard evaluation. Guards are one-line
// expressions; anything that runs this long is broken.
const evalTimeout = 50 * time.Millisecond

// Guard is a compiled boolean expression evaluated against run state.
// Room files attach guards to doors, e.g. "kills >= 6 || quest_done".
type Guard struct {
	src      string
	compiled *tengo.Compiled
}

// Compile wraps expr so its result lands in a known output variable,
// declares the allowed globals, and compiles once. Guard expressions may
// use the tengo standard library.
func Compile(expr string, vars []string) (*Guard, error) {
	src := fmt.Sprintf("__ok := (%s)", expr)
	s := tengo.NewScript([]byte(src))
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for _, name := range vars {
		if err := s.Add(name, 0); err != nil {
			return nil, fmt.Errorf("script: declare %s: %w", name, err)
		}
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", expr, err)
	}
	return &Guard{src: expr, compiled: compiled}, nil
}

// Eval runs the guard against the given variable values and reports the
// expression's truthiness. Variables not present keep their declared zero
// value.
func (g *Guard) Eval(vars map[string]any) (bool, error) {
	for name, value := range vars {
		if err := g.compiled.Set(name, value); err != nil {
			return false, fmt.Errorf("script: set %s: %w", name, err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	if err := g.compiled.RunContext(ctx); err != nil {
		return false, fmt.Errorf("script: eval %q: %w", g.src, err)
	}
	return !g.compiled.Get("__ok").Object().IsFalsy(), nil
}

// Expr returns the original expression text.
func (g *Guard) Expr() string {
	return g.src
}
