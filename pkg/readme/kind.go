package readme

import (
	"strings"

	"github.com/matzehuels/autoreadme/pkg/errors"
)

// Kind selects the README layout.
type Kind string

// Supported README layouts.
const (
	Basic      Kind = "basic"
	OpenSource Kind = "open-source"
	CLITool    Kind = "cli-tool"
	APIDocs    Kind = "api-docs"
)

// Kinds lists every layout in menu order.
func Kinds() []Kind {
	return []Kind{Basic, OpenSource, CLITool, APIDocs}
}

// Title is the human-readable name shown in menus.
func (k Kind) Title() string {
	switch k {
	case Basic:
		return "Basic"
	case OpenSource:
		return "Open Source (Contributing Guide, Code of Conduct)"
	case CLITool:
		return "CLI Tool (Commands, Usage)"
	case APIDocs:
		return "API Docs (Endpoints, API Reference)"
	}
	return string(k)
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind parses a layout name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.New(errors.ErrCodeInvalidTemplate,
			"unknown template %q (valid: %s)", s, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
