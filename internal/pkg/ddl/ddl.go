// Package ddl reads migration files into Spanner DDL statements.
package ddl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Migration is one .sql file split into statements.
type Migration struct {
	Name       string
	Statements []string
}

// Split drops "--" comment lines and blank lines, then splits on semicolons.
// Spanner rejects a trailing semicolon, so none is kept.
func Split(content string) []string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		kept = append(kept, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// Load reads every *.sql file in dir in lexical order.
func Load(dir string) ([]Migration, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		migrations = append(migrations, Migration{
			Name:       filepath.Base(file),
			Statements: Split(string(content)),
		})
	}
	return migrations, nil
}
