package league

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ParseError wraps the message describing a grammar violation with the
// position of the token at which parsing could not continue.
type ParseError struct {
	token   lexer.Token
	message string
}

// NewParseError creates a new parse error located at the given token.
func NewParseError(token lexer.Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.EOF() {
		return fmt.Sprintf(
			"[line %d, column %d] Error at end: %s",
			err.token.Pos.Line,
			err.token.Pos.Column,
			err.message,
		)
	}
	if err.token.Type == tokenEOL {
		return fmt.Sprintf(
			"[line %d, column %d] Error at end of line: %s",
			err.token.Pos.Line,
			err.token.Pos.Column,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d, column %d] Error at '%s': %s",
		err.token.Pos.Line,
		err.token.Pos.Column,
		err.token.Value,
		err.message,
	)
}
