package cli

import (
	"fmt"
	"strings"
)

// resolveID matches input against ids: an exact match wins, otherwise a
// unique prefix.
func resolveID(noun, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", noun)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", noun, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", noun, input, len(matches))
	}
}
