package version

import (
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestCollectPrefersInjectedValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version = " 1.2.3 "
	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"
	info := Collect()
	if info.Version != "1.2.3" || info.GitCommit != "abc123" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("info = %+v", info)
	}

	Version = ""
	if got := Collect().Version; got != "dev" {
		t.Fatalf("empty version resolved to %q", got)
	}
}

func TestBanner(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	tests := []struct {
		in, want string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-rc.1+build.5", "1.0.0-rc.1+build.5"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		if got := Banner(tt.in); got != tt.want {
			t.Errorf("Banner(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBannerColored(t *testing.T) {
	if os.Getenv("NO_COLOR") != "" {
		t.Skip("NO_COLOR is set")
	}
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	if got := Banner("1.2.3"); got == "1.2.3" {
		t.Fatal("expected colored components")
	}
}
