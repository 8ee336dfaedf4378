package tags

import (
	"strings"

	"github.com/viant/parsly"
)

// Values represents tag values
type Values string

// MatchPairs match paris separated by ,
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(strings.TrimSpace(key), unwrap(strings.TrimSpace(value))); err != nil {
			return err
		}
	}
	return nil
}

func unwrap(value string) string {
	if len(value) < 2 {
		return value
	}
	switch {
	case value[0] == '{' && value[len(value)-1] == '}',
		value[0] == '\'' && value[len(value)-1] == '\'':
		return value[1 : len(value)-1]
	}
	return value
}
