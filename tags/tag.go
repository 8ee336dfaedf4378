package tags

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag represents a parsed binding tag, i.e. `jsonclass:"key=aa,kind=object,keepNull"`
type Tag struct {
	Key       string
	Kind      string
	Transform string
	KeepNull  bool
	Extra     bool
	Presence  bool
	Ignore    bool
}

// Parse parses binding tag literal, a leading element without value is the key,
// flags such as extra or presence need a leading coma, i.e. ",extra"
func Parse(literal string) (*Tag, error) {
	ret := &Tag{}
	literal = strings.TrimSpace(literal)
	if literal == "-" {
		ret.Ignore = true
		return ret, nil
	}
	leading := !strings.HasPrefix(literal, ",")
	position := 0
	err := Values(literal).MatchPairs(func(key, value string) error {
		position++
		if position == 1 && leading && value == "" {
			ret.Key = key
			return nil
		}
		return ret.update(key, value)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "key", "name":
		t.Key = value
	case "kind":
		t.Kind = value
	case "transform":
		t.Transform = value
	case "keepnull", "keepnullarray":
		flag, err := parseFlag(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", key, err)
		}
		t.KeepNull = flag
	case "extra":
		t.Extra = true
	case "presence":
		t.Presence = true
	case "-", "ignore", "transient":
		t.Ignore = true
	default:
		return fmt.Errorf("unknown tag key: %v", key)
	}
	return nil
}

func parseFlag(value string) (bool, error) {
	if value == "" {
		return true, nil
	}
	return strconv.ParseBool(value)
}

// String returns tag literal
func (t *Tag) String() string {
	if t.Ignore {
		return "-"
	}
	var elements []string
	if t.Key != "" {
		elements = append(elements, "key="+t.Key)
	}
	if t.Kind != "" {
		elements = append(elements, "kind="+t.Kind)
	}
	if t.Transform != "" {
		elements = append(elements, "transform="+t.Transform)
	}
	if t.KeepNull {
		elements = append(elements, "keepNull")
	}
	if t.Extra {
		elements = append(elements, "extra")
	}
	if t.Presence {
		elements = append(elements, "presence")
	}
	return strings.Join(elements, ",")
}
