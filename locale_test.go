package imagetext

import (
	"runtime"
	"testing"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"en-US", "en-US", true},
		{"pt_BR", "pt-BR", true},
		{"de", "de", true},
		{" ja-JP ", "ja-JP", true},
		{"", "", false},
		{"C", "", false},
		{"POSIX", "", false},
		{"und", "", false},
		{"not a locale", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeLocale(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("normalizeLocale(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDetectLocale(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("locale comes from the Windows API, not the environment")
	}
	tests := []struct {
		name  string
		lcAll string
		lang  string
		want  string
	}{
		{"from LANG", "", "fr_FR.UTF-8", "fr-FR"},
		{"LC_ALL wins", "es_ES.UTF-8", "fr_FR.UTF-8", "es-ES"},
		{"unset", "", "", DefaultLocale},
		{"posix", "", "C", DefaultLocale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LANG", tt.lang)
			if got := DetectLocale(); got != tt.want {
				t.Errorf("DetectLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}
