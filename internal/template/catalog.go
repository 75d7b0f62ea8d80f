package template

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pyforge/pyforge/pkg/models"
)

// Entry is a single file rule in the static scaffold catalog.
type Entry struct {
	// Path is the slash-separated path of the file relative to the
	// target root. It may contain template expressions (e.g.
	// "src/{{.PackageName}}/__init__.py") expanded at emission time.
	Path string

	// Source names the backing file under the embedded templates tree.
	// Sources ending in .tmpl are rendered with the RenderContext;
	// everything else is copied verbatim.
	Source string

	// Mode is the permission mode for the emitted file.
	Mode fs.FileMode

	// When decides whether the entry applies to a configuration.
	// A nil predicate means the entry is always included.
	When func(models.ProjectConfig) bool
}

// rendered reports whether the entry's source goes through the renderer.
func (e Entry) rendered() bool {
	return strings.HasSuffix(e.Source, ".tmpl")
}

// EntriesFor returns the catalog entries that apply to cfg, in
// deterministic emission order: within a directory, subdirectories
// come before plain files, and siblings sort lexicographically.
// This is a pure function over the static catalog and the config.
func EntriesFor(cfg models.ProjectConfig) []Entry {
	var selected []Entry
	for _, e := range catalog {
		if e.When == nil || e.When(cfg) {
			selected = append(selected, e)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return pathLess(selected[i].Path, selected[j].Path)
	})

	return selected
}

// pathLess orders slash-separated paths so that, at the first level
// where two paths diverge, a path descending into a subdirectory sorts
// before a plain file, and names within the same directory compare
// lexicographically.
func pathLess(a, b string) bool {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")

	for i := 0; i < len(as) && i < len(bs); i++ {
		aLeaf := i == len(as)-1
		bLeaf := i == len(bs)-1
		if as[i] == bs[i] {
			continue
		}
		if aLeaf != bLeaf {
			// Directory component beats file component at the same level.
			return !aLeaf
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}

// checkCatalog verifies the catalog invariant that every entry path is
// unique. Called from an init func so a bad catalog fails fast rather
// than silently shadowing entries.
func checkCatalog(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Path] {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Path)
		}
		seen[e.Path] = true
	}
	return nil
}

func init() {
	if err := checkCatalog(catalog); err != nil {
		panic(err)
	}
}
