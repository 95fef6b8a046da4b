// Package redact masks probable secrets in command lines before they are
// shown in logs or error messages. It never changes what is executed.
//
// Only leading environment assignments are considered:
//
//	API_TOKEN=abc123 DEPLOY_ENV="prod eu" ./deploy.sh
//
// renders as
//
//	API_TOKEN=**** DEPLOY_ENV=**** ./deploy.sh
//
// Scanning stops at the first token that is not a KEY=value assignment,
// since that token is the command word and everything after it belongs to
// the command.
package redact

import "strings"

// Mask replaces a redacted value.
const Mask = "****"

// Token is a shell word with its byte span in the original line.
// Text keeps any quotes exactly as written.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits line into shell words. Single and double quoted
// sections (and backslash escapes outside single quotes) do not split a
// word, so `echo "a b"` has two tokens. An unterminated quote runs to the
// end of the line.
func Tokenize(line string) []Token {
	var tokens []Token
	start := -1
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		if quote != 0 {
			switch {
			case c == quote:
				quote = 0
			case c == '\\' && quote == '"' && i+1 < len(line):
				i++
			}
			continue
		}

		switch c {
		case ' ', '\t', '\n', '\r':
			if start >= 0 {
				tokens = append(tokens, Token{Text: line[start:i], Start: start, End: i})
				start = -1
			}
			continue
		}

		if start < 0 {
			start = i
		}
		switch c {
		case '\'', '"':
			quote = c
		case '\\':
			if i+1 < len(line) {
				i++
			}
		}
	}

	if start >= 0 {
		tokens = append(tokens, Token{Text: line[start:], Start: start, End: len(line)})
	}
	return tokens
}

// Command returns line with the values of its leading KEY=value
// assignments replaced by Mask. Everything else, whitespace included, is
// kept as written.
func Command(line string) string {
	var b strings.Builder
	last := 0
	for _, tok := range Tokenize(line) {
		key, ok := assignmentKey(tok.Text)
		if !ok {
			break
		}
		valueStart := tok.Start + len(key) + 1
		if valueStart == tok.End {
			continue
		}
		b.WriteString(line[last:valueStart])
		b.WriteString(Mask)
		last = tok.End
	}
	b.WriteString(line[last:])
	return b.String()
}

// assignmentKey returns KEY if word has the form KEY=value with an
// identifier-shaped KEY.
func assignmentKey(word string) (string, bool) {
	eq := strings.IndexByte(word, '=')
	if eq <= 0 {
		return "", false
	}
	key := word[:eq]
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return "", false
		}
	}
	return key, true
}
