package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := Open("")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "missionctl", "prefs.toml")
	if f.Path() != want {
		t.Fatalf("Path = %q, want %q", f.Path(), want)
	}
	if got := f.Load().Theme; got != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", got, DefaultTheme)
	}
}

func TestSaveThenLoad(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.toml"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := f.Save(Prefs{Theme: "Mars Dust"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := f.Load().Theme; got != "Mars Dust" {
		t.Fatalf("Theme = %q, want Mars Dust", got)
	}
}

func TestLoad_BadContentFallsBack(t *testing.T) {
	cases := map[string]string{
		"empty theme":  "theme = \"\"\n",
		"invalid toml": "not valid toml {{{\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			f, err := Open(path)
			if err != nil {
				t.Fatalf("Open returned error: %v", err)
			}
			if got := f.Load().Theme; got != DefaultTheme {
				t.Fatalf("Theme = %q, want %q", got, DefaultTheme)
			}
		})
	}
}

func TestSave_ZeroFileErrors(t *testing.T) {
	if err := (File{}).Save(Prefs{Theme: "x"}); err == nil {
		t.Fatalf("Save on zero File returned nil error")
	}
}
