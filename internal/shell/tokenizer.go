package shell

import (
	"strings"

	"github.com/mansson/poshell/internal/shellerr"
)

// Token is a single dequoted word produced by the lexer. It carries no
// record of how it was quoted — operator recognition downstream is a
// pure string comparison against the token's value.
type Token struct {
	Value string
}

// Lex splits line into words following POSIX-ish quoting rules:
// whitespace separates tokens outside quotes, a backslash escapes the
// next character outside quotes, single quotes are fully literal, and
// double quotes recognize only the \$ \` \" \\ and \<newline> escapes.
// Adjacent quoted/unquoted fragments with no intervening whitespace
// join into one token.
func Lex(line string) ([]Token, error) {
	var tokens []Token
	var cur strings.Builder
	haveToken := false

	flush := func() {
		if haveToken {
			tokens = append(tokens, Token{Value: cur.String()})
			cur.Reset()
			haveToken = false
		}
	}

	runes := []rune(line)
	i := 0
	n := len(runes)

	for i < n {
		ch := runes[i]

		switch {
		case ch == ' ' || ch == '\t':
			flush()
			i++

		case ch == '\\':
			if i+1 >= n {
				return nil, shellerr.InvalidQuoting("trailing backslash")
			}
			cur.WriteRune(runes[i+1])
			haveToken = true
			i += 2

		case ch == '\'':
			j := i + 1
			for j < n && runes[j] != '\'' {
				cur.WriteRune(runes[j])
				j++
			}
			if j >= n {
				return nil, shellerr.InvalidQuoting("unterminated single quote")
			}
			haveToken = true
			i = j + 1

		case ch == '"':
			j := i + 1
			for j < n && runes[j] != '"' {
				if runes[j] == '\\' && j+1 < n && isDoubleQuoteEscape(runes[j+1]) {
					cur.WriteRune(runes[j+1])
					j += 2
					continue
				}
				cur.WriteRune(runes[j])
				j++
			}
			if j >= n {
				return nil, shellerr.InvalidQuoting("unterminated double quote")
			}
			haveToken = true
			i = j + 1

		default:
			cur.WriteRune(ch)
			haveToken = true
			i++
		}
	}

	flush()
	return tokens, nil
}

func isDoubleQuoteEscape(r rune) bool {
	switch r {
	case '$', '`', '"', '\\', '\n':
		return true
	default:
		return false
	}
}
