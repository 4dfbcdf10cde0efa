// Package gitignore adds entries to a project's .gitignore file.
package gitignore

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the ignore file managed in the project directory.
const FileName = ".gitignore"

// EnsureEntry makes sure <dir>/.gitignore lists pattern, creating the file
// if needed. When the pattern is added it is preceded by "# comment".
// It reports whether the file was modified.
func EnsureEntry(dir, comment, pattern string) (bool, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", FileName, err)
	}
	if hasLine(data, pattern) {
		return false, nil
	}

	var block strings.Builder
	if len(data) > 0 {
		if !bytes.HasSuffix(data, []byte("\n")) {
			block.WriteString("\n")
		}
		block.WriteString("\n")
	}
	if comment != "" {
		block.WriteString("# " + comment + "\n")
	}
	block.WriteString(pattern + "\n")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", FileName, err)
	}
	defer f.Close()

	if _, err := f.WriteString(block.String()); err != nil {
		return false, fmt.Errorf("write %s: %w", FileName, err)
	}
	return true, nil
}

func hasLine(data []byte, pattern string) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == pattern {
			return true
		}
	}
	return false
}
