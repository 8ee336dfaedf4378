package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// matchPair matches the next key[=value] element, the cursor is moved past the trailing coma
func matchPair(cursor *parsly.Cursor) (string, string) {
	match := cursor.MatchAny(scopeBlockMatcher, nextTerminator(cursor.Input[cursor.Pos:]))
	switch match.Code {
	case scopeBlockToken:
		value := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return splitPair(value)
	case comaTerminatorToken:
		return splitPair(strings.TrimSuffix(match.Text(cursor), ","))
	case eqTerminatorToken:
		key := strings.TrimSuffix(match.Text(cursor), "=")
		return key, matchValue(cursor)
	}
	return splitPair(remaining(cursor))
}

// nextTerminator returns the matcher of whichever comes first: '=' or ','
func nextTerminator(input []byte) *parsly.Token {
	eqIndex := bytes.IndexByte(input, '=')
	comaIndex := bytes.IndexByte(input, ',')
	if eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex) {
		return eqTerminatorMatcher
	}
	return comaTerminatorMatcher
}

func matchValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return value
	case comaTerminatorToken:
		return strings.TrimSuffix(match.Text(cursor), ",")
	}
	return remaining(cursor)
}

func remaining(cursor *parsly.Cursor) string {
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}

func splitPair(element string) (string, string) {
	if index := strings.Index(element, "="); index != -1 {
		return element[:index], element[index+1:]
	}
	return element, ""
}
