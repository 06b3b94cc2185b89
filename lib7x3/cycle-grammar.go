package lib7x3

import (
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// CycleExpr is a product of disjoint cycles, e.g. "(1 2)(3 4 5)"
type CycleExpr struct {
	Cycles []*CycleTerm `parser:"@@*"`
}

type CycleTerm struct {
	Symbols []string `parser:"\"(\" @Symbol+ \")\""`
}

var sCycleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Symbol", Pattern: `[^\s(),]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

var sParseCycleExpr = participle.MustBuild[CycleExpr](
	participle.Lexer(sCycleLexer),
	participle.Elide("whitespace"),
)

// ParseCycleNotation is the inverse of ToCycleNotation: it returns the permutation of origin described by expr.
//
// Each cycle (a b c) maps a -> b, b -> c, c -> a and symbols not mentioned are fixed.  Singleton cycles are allowed,
// and go7x3.IdentityCycle always denotes the identity.
func ParseCycleNotation(origin go7x3.Ordering, expr string) (go7x3.Ordering, error) {
	if len(origin) != go7x3.NumSymbols || !origin.HasDistinctSymbols() {
		return nil, errors.Wrapf(go7x3.ErrInvalidArgument, "origin must hold %d distinct symbols, got %v", go7x3.NumSymbols, origin)
	}

	expr = strings.TrimSpace(expr)
	if expr == go7x3.IdentityCycle {
		return origin.Clone(), nil
	}

	parsed, err := sParseCycleExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(go7x3.ErrBadCycleNotation, "%q: %v", expr, err)
	}
	if len(parsed.Cycles) == 0 {
		return nil, errors.Wrapf(go7x3.ErrBadCycleNotation, "%q holds no cycles", expr)
	}

	image := make(map[go7x3.Symbol]go7x3.Symbol, len(origin))
	for _, cycle := range parsed.Cycles {
		N := len(cycle.Symbols)
		for k, sym := range cycle.Symbols {
			if !origin.Contains(sym) {
				return nil, errors.Wrapf(go7x3.ErrBadCycleNotation, "unknown symbol %q", sym)
			}
			if _, dupe := image[sym]; dupe {
				return nil, errors.Wrapf(go7x3.ErrBadCycleNotation, "symbol %q appears more than once", sym)
			}
			image[sym] = cycle.Symbols[(k+1)%N]
		}
	}

	perm := make(go7x3.Ordering, len(origin))
	for i, sym := range origin {
		if mapped, exists := image[sym]; exists {
			perm[i] = mapped
		} else {
			perm[i] = sym
		}
	}
	return perm, nil
}
