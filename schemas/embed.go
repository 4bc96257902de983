// Package schemas provides the embedded flashcard schema for each supported driver.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Files contains the schema files, one directory per driver.
//
//go:embed sqlite/*.sql mysql/*.sql
var Files embed.FS

var driverDirs = map[string]string{
	"sqlite3": "sqlite",
	"mysql":   "mysql",
}

// Statements returns the schema statements for driver in file order.
// Every statement is idempotent.
func Statements(driver string) ([]string, error) {
	dir, ok := driverDirs[driver]
	if !ok {
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}

	names, err := fs.Glob(Files, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", dir, err)
	}
	sort.Strings(names)

	var statements []string
	for _, name := range names {
		content, err := Files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}
	return statements, nil
}
