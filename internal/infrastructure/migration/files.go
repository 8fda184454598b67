package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/golang-migrate/migrate/v4/source"
)

// versionLayout gives sortable timestamps, matching the existing files
const versionLayout = "20060102150405"

var scaffold = template.Must(template.New("migration").Parse(
	`-- {{.Name}}{{if .Down}} (rollback){{end}}
-- Version: {{.Version}}
{{- if .Description}}
-- {{.Description}}
{{- end}}
{{if .Down}}
-- Undo everything the matching .up.sql does, in reverse order.
{{else}}
-- Keep internal/infrastructure/persistence/models in step with this schema.
{{end}}
`))

// Entry is one migration version found in a source
type Entry struct {
	Version uint
	Name    string
	HasUp   bool
	HasDown bool
}

// Pair is a newly scaffolded pair of migration files
type Pair struct {
	Version  string
	UpPath   string
	DownPath string
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a free-form migration name into the identifier part of a file
// name: lower case, with runs of anything else collapsed to underscores.
func Slug(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

// Scaffold writes an empty up/down pair for name into dir, versioned by now.
// Existing files are never overwritten.
func Scaffold(dir, name, description string, now time.Time) (*Pair, error) {
	slug := Slug(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	version := now.UTC().Format(versionLayout)
	base := filepath.Join(dir, version+"_"+slug)
	pair := &Pair{Version: version, UpPath: base + ".up.sql", DownPath: base + ".down.sql"}

	data := struct {
		Name, Version, Description string
		Down                       bool
	}{Name: name, Version: version, Description: description}

	if err := writeNew(pair.UpPath, data); err != nil {
		return nil, err
	}
	data.Down = true
	if err := writeNew(pair.DownPath, data); err != nil {
		_ = os.Remove(pair.UpPath)
		return nil, err
	}
	return pair, nil
}

func writeNew(path string, data any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := scaffold.Execute(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// List reads the migrations at the root of fsys, in version order. Files
// that golang-migrate would not recognise are skipped.
func List(fsys fs.FS) ([]Entry, error) {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	byVersion := make(map[uint]*Entry)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".sql") {
			continue
		}
		m, err := source.Parse(f.Name())
		if err != nil {
			continue
		}
		e, ok := byVersion[m.Version]
		if !ok {
			e = &Entry{Version: m.Version, Name: m.Identifier}
			byVersion[m.Version] = e
		}
		switch m.Direction {
		case source.Up:
			e.HasUp = true
		case source.Down:
			e.HasDown = true
		}
	}

	entries := make([]Entry, 0, len(byVersion))
	for _, e := range byVersion {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Version < entries[j].Version })
	return entries, nil
}

// ListDir is List over a directory on disk. A missing directory has no
// migrations.
func ListDir(dir string) ([]Entry, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return List(os.DirFS(dir))
}
