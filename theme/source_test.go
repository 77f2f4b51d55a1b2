package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseProperty(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantH   float64
		wantErr bool
	}{
		{"Root block", ":root {\n  --background: 0 0% 100%;\n  --primary: 262 83% 58%;\n}\n", 262, false},
		{"Single line", ":root { --primary: 160 36% 45%; }", 160, false},
		{"Prefix sibling ignored", "--primary-foreground: 10 10% 10%;\n--primary: 40 50% 50%;", 40, false},
		{"Last declaration wins", "--primary: 10 50% 50%;\n.dark { --primary: 20 50% 50%; }", 20, false},
		{"Bare token", "262 83% 58%\n", 262, false},
		{"Missing property", "--accent: 1 1% 1%;", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProperty([]byte(tt.data), DefaultProperty)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.H != tt.wantH {
				t.Errorf("hue = %v, want %v", got.H, tt.wantH)
			}
		})
	}
}

func TestFileSourceFollowsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.css")
	fallback := Static(HSL{H: 1, S: 0.5, L: 0.5})
	src := NewFileSource(path, fallback)

	// Missing file uses fallback
	if got := src.Primary(); got.H != 1 {
		t.Errorf("missing file: hue = %v, want fallback 1", got.H)
	}
	if src.Err() == nil {
		t.Error("missing file should record an error")
	}

	if err := os.WriteFile(path, []byte("--primary: 100 50% 50%;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := src.Primary(); got.H != 100 {
		t.Errorf("after write: hue = %v, want 100", got.H)
	}

	// Rewrite with a different size and bumped mtime so the change is detectable on coarse clocks
	if err := os.WriteFile(path, []byte("--primary: 200 50% 50%; /* switched */"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	if got := src.Primary(); got.H != 200 {
		t.Errorf("after rewrite: hue = %v, want 200", got.H)
	}

	// Malformed content keeps the last good color
	if err := os.WriteFile(path, []byte("--primary: nope;"), 0o644); err != nil {
		t.Fatal(err)
	}
	later := future.Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if got := src.Primary(); got.H != 200 {
		t.Errorf("malformed: hue = %v, want last good 200", got.H)
	}
	if src.Err() == nil {
		t.Error("malformed file should record an error")
	}
}

func TestCycle(t *testing.T) {
	c := NewCycle(DefaultPresets()...)
	if c.Name() != "dark" {
		t.Fatalf("initial preset = %q, want dark", c.Name())
	}
	dark := c.Primary()

	if name := c.Next(); name != "light" {
		t.Errorf("Next() = %q, want light", name)
	}
	if c.Primary() == dark {
		t.Error("primary did not change after Next")
	}
	if name := c.Next(); name != "dark" {
		t.Errorf("Next() wrapped to %q, want dark", name)
	}

	if !c.Select("light") || c.Name() != "light" {
		t.Error("Select(light) failed")
	}
	if c.Select("sepia") {
		t.Error("Select accepted unknown preset")
	}

	if NewCycle() != nil {
		t.Error("NewCycle with no presets should be nil")
	}
}
