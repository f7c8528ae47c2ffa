// Package cli provides CLI infrastructure for fg.
package cli

import (
	"fmt"
	"strings"
)

// MatchCommand finds a unique command from a prefix, as typed into the
// interactive shell. An exact match always wins over prefix matches.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("empty command")
	}

	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Type: "command", ID: fmt.Sprintf("%q", prefix)}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
