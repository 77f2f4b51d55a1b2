package theme

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Source supplies the current primary color, queried once per frame
type Source interface {
	Primary() HSL
}

// Static is a fixed color
type Static HSL

func (s Static) Primary() HSL {
	return HSL(s)
}

// Preset is a named primary color
type Preset struct {
	Name    string
	Primary HSL
}

// Cycle switches between presets, safe for use from input and frame goroutines
type Cycle struct {
	mu      sync.RWMutex
	presets []Preset
	current int
}

// NewCycle creates a cycle starting at the first preset, nil if presets is empty
func NewCycle(presets ...Preset) *Cycle {
	if len(presets) == 0 {
		return nil
	}
	return &Cycle{presets: presets}
}

func (c *Cycle) Primary() HSL {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.presets[c.current].Primary
}

// Next advances to the following preset and returns its name
func (c *Cycle) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % len(c.presets)
	return c.presets[c.current].Name
}

// Name returns the active preset name
func (c *Cycle) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.presets[c.current].Name
}

// Select activates the named preset, false if unknown
func (c *Cycle) Select(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.presets {
		if p.Name == name {
			c.current = i
			return true
		}
	}
	return false
}

// FileSource follows a CSS-style file declaring the primary custom property
// The file is stat'ed on every Primary call and re-parsed when its size or mtime changes
// A missing or malformed file keeps the last good color
type FileSource struct {
	path     string
	property string
	fallback Source

	mu      sync.Mutex
	current HSL
	loaded  bool
	modTime time.Time
	size    int64
	lastErr error
}

// DefaultProperty is the custom property FileSource looks for
const DefaultProperty = "--primary"

// NewFileSource creates a source for path, using fallback until the file parses
func NewFileSource(path string, fallback Source) *FileSource {
	return &FileSource{
		path:     path,
		property: DefaultProperty,
		fallback: fallback,
	}
}

func (f *FileSource) Primary() HSL {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refresh()
	if !f.loaded {
		return f.fallback.Primary()
	}
	return f.current
}

// Err returns the last read or parse error, nil once a read succeeds
func (f *FileSource) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// refresh re-parses the file if it changed since the last successful read
func (f *FileSource) refresh() {
	info, err := os.Stat(f.path)
	if err != nil {
		f.lastErr = err
		return
	}
	if f.loaded && info.ModTime().Equal(f.modTime) && info.Size() == f.size {
		return
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.lastErr = err
		return
	}
	c, err := ParseProperty(data, f.property)
	if err != nil {
		f.lastErr = fmt.Errorf("%s: %w", f.path, err)
		// Remember the stamp so a broken file is not re-read every frame
		f.modTime, f.size = info.ModTime(), info.Size()
		return
	}

	f.current = c
	f.loaded = true
	f.modTime, f.size = info.ModTime(), info.Size()
	f.lastErr = nil
}

// ParseProperty finds the last "property: value;" declaration in CSS-like data and parses its value
// A bare token with no declarations is accepted as the value itself
func ParseProperty(data []byte, property string) (HSL, error) {
	var value string
	found := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for _, decl := range strings.Split(line, ";") {
			if v, ok := declValue(decl, property); ok {
				value = v
				found = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return HSL{}, err
	}

	if !found {
		bare := strings.TrimSpace(string(data))
		if bare == "" || strings.ContainsAny(bare, ":;{}") {
			return HSL{}, fmt.Errorf("%w: property %s not found", ErrMalformed, property)
		}
		value = bare
	}
	return Parse(value)
}

// declValue extracts the value of property from a single declaration, ignoring any selector before it
// Longer names sharing the prefix (--primary-foreground) do not match
func declValue(decl, property string) (string, bool) {
	i := strings.Index(decl, property)
	for i >= 0 {
		rest := strings.TrimSpace(decl[i+len(property):])
		if strings.HasPrefix(rest, ":") {
			v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[1:]), "}"))
			return v, true
		}
		next := strings.Index(decl[i+1:], property)
		if next < 0 {
			break
		}
		i += next + 1
	}
	return "", false
}
