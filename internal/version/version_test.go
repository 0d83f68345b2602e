package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"dev build", "dev", "unknown", "unknown", "swatch version dev (" + runtime.Version()},
		{"release build", "1.2.0", "0123456789abcdef", "2026-01-02T03:04:05Z", "swatch version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{"short commit", "1.2.1", "abc", "2026-01-02T03:04:05Z", "swatch version 1.2.1 (commit: abc, built:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := String(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("String() = %q, want prefix %q", got, tt.want)
			}
			if Short() != tt.version {
				t.Errorf("Short() = %q, want %q", Short(), tt.version)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
}
