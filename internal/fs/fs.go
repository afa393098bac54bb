// Package fs wraps the read-only filesystem access the browser needs:
// listing directories in presentation order and reading file contents as
// displayable text.
package fs

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"peruse/internal/errors"
	"peruse/internal/log"
)

// Entry is one directory member as the tree consumes it.
type Entry struct {
	Name  string
	IsDir bool
}

// Walker lists directories and reads files beneath the browse root. Names
// matching any exclude pattern are never surfaced.
type Walker struct {
	exclude []glob.Glob
	obs     log.Observer
}

// NewWalker compiles the exclude patterns into a walker. The config layer
// validates patterns up front, so a failure here means the walker was built
// from unchecked input.
func NewWalker(patterns []string, obs log.Observer) (*Walker, error) {
	w := &Walker{obs: obs}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling exclude pattern %q", pattern)
		}
		w.exclude = append(w.exclude, g)
	}
	return w, nil
}

// List returns the entries of path in presentation order: directories
// first, case-insensitive name order within each group, excluded names
// removed. Failure yields a read error carrying the path.
func (w *Walker) List(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if w.excluded(de.Name()) {
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})

	w.obs.Debugf("listed %s: %d entries", path, len(entries))
	return entries, nil
}

func (w *Walker) excluded(name string) bool {
	for _, g := range w.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ReadText reads the file at path as text, substituting the Unicode
// replacement character for bytes that do not decode rather than failing.
func (w *Walker) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewReadError(path, err)
	}
	w.obs.Debugf("read %s: %d bytes", path, len(data))
	return decodeReplacing(data), nil
}

// decodeReplacing converts raw bytes to a valid UTF-8 string, replacing
// each undecodable byte individually.
func decodeReplacing(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(data[:size])
		}
		data = data[size:]
	}
	return b.String()
}
