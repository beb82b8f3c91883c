package league

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
)

type tokenView struct {
	Type  lexer.TokenType
	Value string
}

func viewTokens(tokens []lexer.Token) []tokenView {
	views := make([]tokenView, 0, len(tokens))
	for _, tok := range tokens {
		if tok.EOF() {
			continue
		}
		views = append(views, tokenView{tok.Type, tok.Value})
	}
	return views
}

func TestScanRow(t *testing.T) {
	testCases := []struct {
		src   string
		views []tokenView
	}{
		{"Lions 3, Snakes 3", []tokenView{
			{tokenWord, "Lions"},
			{tokenNumber, "3"},
			{tokenComma, ","},
			{tokenWord, "Snakes"},
			{tokenNumber, "3"},
		}},
		{"Tarantulas 1, FC Awesome 0", []tokenView{
			{tokenWord, "Tarantulas"},
			{tokenNumber, "1"},
			{tokenComma, ","},
			{tokenWord, "FC"},
			{tokenWord, "Awesome"},
			{tokenNumber, "0"},
		}},
		// spaces and tabs never reach the parser
		{"Lions \t 3   ,\tSnakes 3", []tokenView{
			{tokenWord, "Lions"},
			{tokenNumber, "3"},
			{tokenComma, ","},
			{tokenWord, "Snakes"},
			{tokenNumber, "3"},
		}},
		// hyphens and underscores continue a word
		{"Spar-ta_ns 10, B2 4", []tokenView{
			{tokenWord, "Spar-ta_ns"},
			{tokenNumber, "10"},
			{tokenComma, ","},
			{tokenWord, "B2"},
			{tokenNumber, "4"},
		}},
		{"", []tokenView{}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tokens, err := scan(tc.src)

		assert.NoError(err)
		assert.Equal(tc.views, viewTokens(tokens))
		assert.True(tokens[len(tokens)-1].EOF())
	}
}

func TestScanNewlineRuns(t *testing.T) {
	testCases := []struct {
		src   string
		views []tokenView
	}{
		{"A 1, B 0\nC 2, D 2", []tokenView{
			{tokenWord, "A"}, {tokenNumber, "1"}, {tokenComma, ","},
			{tokenWord, "B"}, {tokenNumber, "0"},
			{tokenEOL, "\n"},
			{tokenWord, "C"}, {tokenNumber, "2"}, {tokenComma, ","},
			{tokenWord, "D"}, {tokenNumber, "2"},
		}},
		// a run of \r and \n is a single EOL token
		{"A 1, B 0\r\n\r\nC 2, D 2", []tokenView{
			{tokenWord, "A"}, {tokenNumber, "1"}, {tokenComma, ","},
			{tokenWord, "B"}, {tokenNumber, "0"},
			{tokenEOL, "\r\n\r\n"},
			{tokenWord, "C"}, {tokenNumber, "2"}, {tokenComma, ","},
			{tokenWord, "D"}, {tokenNumber, "2"},
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tokens, err := scan(tc.src)

		assert.NoError(err)
		assert.Equal(tc.views, viewTokens(tokens))
	}
}

func TestScanPositions(t *testing.T) {
	assert := assert.New(t)

	tokens, err := scan("Lions 3,\nSnakes 3")
	assert.NoError(err)

	// Word Number Comma EOL Word Number EOF
	assert.Len(tokens, 7)
	assert.Equal(lexer.Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(lexer.Position{Offset: 6, Line: 1, Column: 7}, tokens[1].Pos)
	assert.Equal(lexer.Position{Offset: 7, Line: 1, Column: 8}, tokens[2].Pos)
	assert.Equal(lexer.Position{Offset: 9, Line: 2, Column: 1}, tokens[4].Pos)
	assert.Equal(lexer.Position{Offset: 16, Line: 2, Column: 8}, tokens[5].Pos)
	assert.True(tokens[6].EOF())
}
