package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_ResultShades(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Success:     "#00ff00",
		Error:       "#ff0000",
		Warning:     "#ffff00",
	}

	palette := NewPalette(base)

	if palette.SuccessBg != lipgloss.Color(blendColors(base.Success, base.Bg, 0.75)) {
		t.Fatalf("SuccessBg = %q, want %q", palette.SuccessBg, blendColors(base.Success, base.Bg, 0.75))
	}
	if palette.ErrorBg != lipgloss.Color(blendColors(base.Error, base.Bg, 0.75)) {
		t.Fatalf("ErrorBg = %q, want %q", palette.ErrorBg, blendColors(base.Error, base.Bg, 0.75))
	}
	if palette.Success != lipgloss.Color(base.Success) {
		t.Fatalf("Success = %q, want %q", palette.Success, base.Success)
	}
}

func TestNewPalette_LightTheme(t *testing.T) {
	base := &Theme{
		Bg:      "#ffffff",
		Fg:      "#000000",
		Accent:  "#0000ff",
		Success: "#00aa00",
		Error:   "#aa0000",
		Warning: "#aaaa00",
	}

	if !base.IsLight() {
		t.Fatal("expected white background to be light")
	}

	palette := NewPalette(base)
	if palette.ErrorBg != lipgloss.Color(blendColors(base.Error, base.Bg, 0.85)) {
		t.Fatalf("ErrorBg = %q, want %q", palette.ErrorBg, blendColors(base.Error, base.Bg, 0.85))
	}
}

func TestNewPalette_NilUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	mocha, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}
	if palette.Bg != lipgloss.Color(mocha.Bg) {
		t.Errorf("Bg = %q, want %q", palette.Bg, mocha.Bg)
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#000000", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("on black: got %q, want white", got)
	}
	if got := chooseTextColor("#ffffff", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("on white: got %q, want black", got)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{name: "no blend", a: "#ff0000", b: "#0000ff", ratio: 0, want: "#ff0000"},
		{name: "full blend", a: "#ff0000", b: "#0000ff", ratio: 1, want: "#0000ff"},
		{name: "clamped", a: "#ff0000", b: "#0000ff", ratio: 2, want: "#0000ff"},
		{name: "half", a: "#000000", b: "#ffffff", ratio: 0.5, want: "#7f7f7f"},
		{name: "invalid input", a: "red", b: "#0000ff", ratio: 0.5, want: "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
			}
		})
	}
}
