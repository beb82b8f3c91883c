package league

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parser composes the list of games from the sequence of tokens that follow
// the grammar rules.
//
// Grammar
//
//	file  --> row ( EOL+ row )* EOL* EOF ;
//	row   --> team "," team ;
//	team  --> name score ;
//	name  --> WORD ( WORD )* ;
//	score --> NUMBER ;
//
// Failed expectations are recorded against the furthest token reached, so the
// returned error describes what was expected at the point where the longest
// match gave up rather than where the outermost rule started.
type Parser struct {
	current  int
	tokens   []lexer.Token
	errToken lexer.Token
	expected []string
}

// NewParser creates a new parser over a scanned token sequence. The sequence
// must end with the lexer's EOF token.
func NewParser(tokens []lexer.Token) *Parser {
	parser := new(Parser)
	parser.tokens = tokens
	parser.errToken = lexer.Token{Pos: lexer.Position{Offset: -1}}
	return parser
}

// Parse tokenizes and parses the complete input text, returning every game in
// input order. On any grammar violation the returned error is a *ParseError
// locating the failure in the original text.
func Parse(text string) ([]Game, error) {
	tokens, err := scan(text)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// file --> row ( EOL+ row )* EOL* EOF ;
func (parser *Parser) Parse() ([]Game, error) {
	var games []Game
	for {
		game, err := parser.row()
		if err != nil {
			return nil, err
		}
		games = append(games, game)
		sawEOL := false
		for parser.check(tokenEOL) {
			parser.advance()
			sawEOL = true
		}
		if parser.isEOF() {
			return games, nil
		}
		if !sawEOL {
			parser.fail("a newline")
			parser.fail("end of input")
			return nil, parser.err()
		}
	}
}

// row --> team "," team ;
//
// Once the comma is matched the rest of the row must parse; any failure past
// it is a hard error, never a signal that the row list ended. The second name
// must differ from the first, checked before the second score is even looked
// at so a duplicate is reported at the name itself.
func (parser *Parser) row() (Game, error) {
	team1, err := parser.team()
	if err != nil {
		return Game{}, err
	}
	if !parser.expect(tokenComma, "','") {
		return Game{}, parser.err()
	}
	nameToken := parser.peek()
	name, err := parser.teamName()
	if err != nil {
		return Game{}, err
	}
	if name == team1.Name {
		return Game{}, NewParseError(
			nameToken,
			fmt.Sprintf("duplicate team %q: a team cannot play itself", name),
		)
	}
	score, err := parser.score()
	if err != nil {
		return Game{}, err
	}
	return Game{team1, TeamScore{name, score}}, nil
}

// team --> name score ;
func (parser *Parser) team() (TeamScore, error) {
	name, err := parser.teamName()
	if err != nil {
		return TeamScore{}, err
	}
	score, err := parser.score()
	if err != nil {
		return TeamScore{}, err
	}
	return TeamScore{name, score}, nil
}

// name --> WORD ( WORD )* ;
//
// The captured name joins the tokens with single spaces no matter how they
// were separated in the input.
func (parser *Parser) teamName() (string, error) {
	if !parser.expect(tokenWord, "a team name") {
		return "", parser.err()
	}
	parts := []string{parser.prev().Value}
	for parser.check(tokenWord) {
		parts = append(parts, parser.advance().Value)
	}
	return strings.Join(parts, " "), nil
}

// score --> NUMBER ;
func (parser *Parser) score() (int, error) {
	if !parser.expect(tokenNumber, "a score") {
		return 0, parser.err()
	}
	tok := parser.prev()
	score, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, NewParseError(tok, "score is out of range")
	}
	return score, nil
}

// expect consumes the next token when it has the given type, otherwise it
// records the missed expectation and leaves the token in place.
func (parser *Parser) expect(tt lexer.TokenType, what string) bool {
	if parser.check(tt) {
		parser.advance()
		return true
	}
	parser.fail(what)
	return false
}

// fail records an expectation at the current token. Expectations at an
// earlier position than the furthest failure are dropped; distinct
// expectations at the same position accumulate.
func (parser *Parser) fail(what string) {
	tok := parser.peek()
	if tok.Pos.Offset > parser.errToken.Pos.Offset {
		parser.errToken = tok
		parser.expected = parser.expected[:0]
	}
	if tok.Pos.Offset < parser.errToken.Pos.Offset {
		return
	}
	for _, seen := range parser.expected {
		if seen == what {
			return
		}
	}
	parser.expected = append(parser.expected, what)
}

// err builds the aggregated parse error from the recorded expectations.
func (parser *Parser) err() error {
	return NewParseError(
		parser.errToken,
		"expected "+strings.Join(parser.expected, " or "),
	)
}

func (parser *Parser) check(tt lexer.TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Type == tt
}

func (parser *Parser) advance() lexer.Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().EOF()
}

func (parser *Parser) peek() lexer.Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() lexer.Token {
	return parser.tokens[parser.current-1]
}
