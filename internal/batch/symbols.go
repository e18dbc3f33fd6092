package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadSymbols reads a list of symbols from a file.
// Supported formats:
//   - .txt  : one symbol per line (or comma separated), '#' lines are comments
//   - .json : JSON array of strings
//
// Symbols are upper-cased and de-duplicated, keeping file order.
func LoadSymbols(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}

	var raw []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case ".txt", "":
		raw = parseSymbolsFromText(string(content))
	default:
		return nil, fmt.Errorf("unsupported symbol file extension %q (use .txt or .json)", filepath.Ext(path))
	}

	symbols := normalizeSymbols(raw)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols in %s", path)
	}
	return symbols, nil
}

// ParseSymbolList splits a comma separated list (the -symbols flag).
func ParseSymbolList(s string) []string {
	return normalizeSymbols(strings.Split(s, ","))
}

func parseSymbolsFromText(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.Split(line, ",")...)
	}
	return out
}

func normalizeSymbols(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
