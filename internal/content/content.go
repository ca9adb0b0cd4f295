// Package content indexes the documentation set so that internal links can
// be checked against the routes it will produce. It reads frontmatter only;
// Markdown bodies are never compiled here.
package content

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

var docExtensions = map[string]bool{".md": true, ".mdx": true}

// Doc is one indexed document.
type Doc struct {
	// Path is the slash-separated path relative to the docs directory.
	Path  string
	ID    string
	Title string
	Route string
}

type meta struct {
	ID    string `yaml:"id" toml:"id" json:"id"`
	Slug  string `yaml:"slug" toml:"slug" json:"slug"`
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Index is the set of routes produced by the docs directory.
type Index struct {
	docs   []Doc
	routes map[string]int
}

// Scan walks dir for .md and .mdx files. Files matching docs.Exclude, and
// files or directories starting with "_", are skipped. A missing directory
// yields an empty index.
func Scan(dir string, docs site.Docs) (*Index, error) {
	idx := &Index{routes: map[string]int{}}
	if dir == "" {
		dir = docs.Dir
	}
	if _, err := os.Stat(dir); stderrors.Is(err, fs.ErrNotExist) {
		slog.Debug("Docs directory not found, content index is empty", logfields.Path(dir))
		return idx, nil
	}

	base := strings.TrimSuffix(docs.RouteBasePath, "/")
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), "_") || excluded(rel, docs.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !docExtensions[strings.ToLower(path.Ext(rel))] {
			return nil
		}

		doc, err := readDoc(p, rel, base)
		if err != nil {
			return err
		}
		if prev, dup := idx.routes[doc.Route]; dup {
			slog.Warn("Two documents share a route",
				logfields.Path(rel),
				slog.String("other", idx.docs[prev].Path),
				logfields.URL(doc.Route))
			return nil
		}
		idx.routes[doc.Route] = len(idx.docs)
		idx.docs = append(idx.docs, doc)
		return nil
	})
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryContent, "scan docs directory").
			WithContext("path", dir).Build()
	}
	slog.Debug("Indexed docs", logfields.Path(dir), logfields.Count(len(idx.docs)))
	return idx, nil
}

func readDoc(full, rel, base string) (Doc, error) {
	f, err := os.Open(full)
	if err != nil {
		return Doc{}, errors.WrapError(err, errors.CategoryFileSystem, "open document").
			WithContext("path", rel).Build()
	}
	defer f.Close()

	var m meta
	if _, err := frontmatter.Parse(f, &m); err != nil {
		return Doc{}, errors.WrapError(err, errors.CategoryContent, "parse frontmatter").
			WithContext("path", rel).Build()
	}

	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	id := name
	if m.ID != "" {
		id = m.ID
	}

	var route string
	switch {
	case strings.HasPrefix(m.Slug, "/"):
		route = base + m.Slug
	case m.Slug != "":
		route = path.Join(base, dir, m.Slug)
	case m.ID == "" && (strings.EqualFold(name, "index") || strings.EqualFold(name, "readme")):
		route = path.Join(base, dir)
	default:
		route = path.Join(base, dir, id)
	}
	return Doc{Path: rel, ID: id, Title: m.Title, Route: normalize(route)}, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		if ok, _ := path.Match(pat, path.Base(rel)); ok {
			return true
		}
	}
	return false
}

// normalize strips query, fragment and trailing slash from a route.
func normalize(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	return route
}

// Has reports whether route (with or without trailing slash, query or
// fragment) is produced by a document.
func (i *Index) Has(route string) bool {
	if i == nil {
		return false
	}
	_, ok := i.routes[normalize(route)]
	return ok
}

// Routes returns every document route, sorted.
func (i *Index) Routes() []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.routes))
	for r := range i.routes {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Docs returns the indexed documents in walk order.
func (i *Index) Docs() []Doc {
	if i == nil {
		return nil
	}
	out := make([]Doc, len(i.docs))
	copy(out, i.docs)
	return out
}

// Len is the number of indexed documents.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.docs)
}
