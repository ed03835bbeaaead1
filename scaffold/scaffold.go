// Package scaffold provides the embedded starter site written by
// `pubsite new`.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// Site contains the starter site. Files with a .tmpl suffix are executed
// as Go text/templates; everything else is copied verbatim.
//
//go:embed all:site
var Site embed.FS

const root = "site"

// Data holds the variables passed to every .tmpl file.
type Data struct {
	SiteName string
	Today    string // YYYY-MM-DD
}

// Create writes the starter site into dir, which must not exist yet, and
// returns the files it created.
func Create(dir string, data Data) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	var created []string
	err := fs.WalkDir(Site, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		outPath := filepath.Join(dir, filepath.FromSlash(OutputName(rel)))

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Site.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if strings.HasSuffix(p, ".tmpl") {
			if content, err = execute(p, content, data); err != nil {
				return err
			}
		}

		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return created, err
	}
	return created, nil
}

// OutputName maps an embedded path (relative to the site root) to the
// path written on disk.
func OutputName(rel string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	if path.Base(rel) == "dotenv" {
		return path.Join(path.Dir(rel), ".env.example")
	}
	return rel
}

var funcs = template.FuncMap{
	"yamlQuote": YAMLQuote,
}

// YAMLQuote renders s as a single-quoted YAML scalar.
func YAMLQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func execute(name string, content []byte, data Data) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return []byte(b.String()), nil
}

// ToTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func ToTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
