package extraction

import (
	"encoding/json"
	"strings"
)

// firstObject returns the first balanced top-level {...} span in s that
// decodes to a JSON object. Braces inside string literals are ignored.
func firstObject(s string) (map[string]any, bool) {
	for start := 0; start < len(s); {
		rel := strings.IndexByte(s[start:], '{')
		if rel < 0 {
			return nil, false
		}
		open := start + rel
		end, ok := matchBrace(s, open)
		if !ok {
			return nil, false
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(s[open:end+1]), &obj); err == nil && obj != nil {
			return obj, true
		}
		start = end + 1
	}
	return nil, false
}

// matchBrace returns the index of the brace closing s[open].
func matchBrace(s string, open int) (int, bool) {
	depth := 0
	inString, escaped := false, false

	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
