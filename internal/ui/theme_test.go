package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Deep Space" {
		t.Fatalf("first theme = %q, want Deep Space", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Deep Space"); got != "Mars Dust" {
		t.Fatalf("NextTheme(Deep Space) = %q, want Mars Dust", got)
	}
	if got := NextTheme("Slate"); got != "Deep Space" {
		t.Fatalf("NextTheme(Slate) = %q, want Deep Space", got)
	}
	if got := NextTheme("unknown"); got != "Deep Space" {
		t.Fatalf("NextTheme(unknown) = %q, want Deep Space", got)
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Deep Space" {
		t.Fatalf("GetTheme(nope) = %q, want Deep Space", got)
	}
}

func TestStarStyleClampsLevel(t *testing.T) {
	s := GetTheme("Slate").Styles()
	if s.Star(-1).GetForeground() != s.Star(0).GetForeground() {
		t.Fatal("negative level not clamped")
	}
	if s.Star(99).GetForeground() != s.Star(len(s.stars)-1).GetForeground() {
		t.Fatal("high level not clamped")
	}
}
