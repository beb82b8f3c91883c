package league

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer rules for the results grammar. Runs of newline characters collapse
// into a single EOL token, and the catch-all Other rule keeps lexing total so
// stray characters surface as parse errors with a position instead of lexer
// failures.
var resultsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `[\n\r]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Other", Pattern: `.`},
})

var symbols = resultsLexer.Symbols()

var (
	tokenEOL        = symbols["EOL"]
	tokenWhitespace = symbols["Whitespace"]
	tokenNumber     = symbols["Number"]
	tokenWord       = symbols["Word"]
	tokenComma      = symbols["Comma"]
)

// scan tokenizes the complete input and drops the whitespace tokens, keeping
// the line/column positions recorded by the lexer so parse errors can point
// into the original text.
func scan(text string) ([]lexer.Token, error) {
	lex, err := resultsLexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	tokens := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.Type == tokenWhitespace {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
