package lib7x3

import (
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// SymbolList is a comma-delimited list of at least two symbols, e.g. "a, b, c"
type SymbolList struct {
	Head string   `parser:"@Symbol"`
	Tail []string `parser:"(\",\" @Symbol)+"`
}

var sSymbolLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comma", Pattern: `,`},
	{Name: "Symbol", Pattern: `[^\s,]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

var sParseSymbolList = participle.MustBuild[SymbolList](
	participle.Lexer(sSymbolLexer),
	participle.Elide("whitespace"),
)

// ParseSymbolList reads an ordered symbol list from user input such as "1,2,3".
//
// Whitespace is ignored.  Empty input and input lacking a comma delimiter return go7x3.ErrMalformedInput.
// Repeated symbols are kept since permutations are generated by position.
func ParseSymbolList(input string) (go7x3.Ordering, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.Wrap(go7x3.ErrMalformedInput, "no symbols given")
	}
	if !strings.Contains(input, ",") {
		return nil, errors.Wrapf(go7x3.ErrMalformedInput, "%q is not comma delimited", input)
	}

	list, err := sParseSymbolList.ParseString("", input)
	if err != nil {
		return nil, errors.Wrapf(go7x3.ErrMalformedInput, "%q: %v", input, err)
	}

	symbols := make(go7x3.Ordering, 0, 1+len(list.Tail))
	symbols = append(symbols, list.Head)
	symbols = append(symbols, list.Tail...)
	return symbols, nil
}
