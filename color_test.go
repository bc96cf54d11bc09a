package gradient

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
		ok   bool
	}{
		{"#ff0000", Red, true},
		{"00ff00", Green, true},
		{"#00F", Blue, true},
		{"#fff", White, true},
		{"#0000ff80", RGBA{B: 1, A: 128.0 / 255}, true},
		{"f008", RGBA{R: 1, A: 136.0 / 255}, true},
		{"", RGBA{}, false},
		{"#12345", RGBA{}, false},
		{"#gg0000", RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := Hex(tt.in)
		if ok != tt.ok || (ok && !colorsEqual(got, tt.want, 1e-9)) {
			t.Errorf("Hex(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want RGBA
	}{
		{"DarkOrchid", FromRGBA8(0x99, 0x32, 0xcc, 0xff)},
		{"steelblue", FromRGBA8(0x46, 0x82, 0xb4, 0xff)},
		{"WHITE", White},
	}
	for _, tt := range tests {
		got, ok := Named(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Named(%q) = %+v, %v; want %+v", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := Named("rebeccapurple"); ok {
		t.Error("Named(rebeccapurple) succeeded; only SVG 1.1 keywords are known")
	}
	if _, ok := Named("notacolor"); ok {
		t.Error("Named(notacolor) succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"red", Red},
		{" blue ", Blue},
		{"#00ff00", Green},
		{"ffffff", White},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := ParseColor("bogus"); ok {
		t.Error("ParseColor(bogus) succeeded")
	}
}

func TestFromRGBA8(t *testing.T) {
	c := FromRGBA8(255, 0, 51, 255)
	if !colorsEqual(c, RGBA{R: 1, B: 0.2, A: 1}, 1e-9) {
		t.Errorf("FromRGBA8() = %+v", c)
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	got := FromColor(c.Color())
	if !colorsEqual(got, c, 1.0/255) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, c)
	}

	n, ok := RGBA{R: 2, G: -1, B: 0.5, A: 1}.Color().(color.NRGBA)
	if !ok || n.R != 255 || n.G != 0 {
		t.Errorf("Color() did not clamp: %+v", n)
	}
}

func TestChannels(t *testing.T) {
	if got, want := (RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}).Channels(), ([4]float32{0.25, 0.5, 0.75, 1}); got != want {
		t.Errorf("Channels() = %v, want %v", got, want)
	}
}
