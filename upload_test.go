package gradient

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// mapBinder records uniform assignments by name.
type mapBinder struct {
	program *Program
	names   []string
	values  map[string][4]float32
	calls   int
	invalid int
}

func newMapBinder(p *Program) *mapBinder {
	return &mapBinder{program: p, names: p.UniformNames(), values: make(map[string][4]float32)}
}

func (b *mapBinder) UniformLocation(p *Program, name string) UniformLocation {
	off, ok := p.UniformOffset(name)
	if p != b.program || !ok {
		return InvalidLocation
	}
	return UniformLocation(off / vec4Size)
}

func (b *mapBinder) SetUniform4f(loc UniformLocation, x, y, z, w float32) {
	b.calls++
	if loc == InvalidLocation {
		b.invalid++
		return
	}
	b.values[b.names[loc]] = [4]float32{x, y, z, w}
}

func TestUploadBindsEveryUniform(t *testing.T) {
	g := MustNormalize([]RGBA{Red, Green, Blue}, []float64{0.2, 0.5, 0.8})
	p := ProgramFor(g, ExtendPad)
	b := newMapBinder(p)

	g.Upload(p, b)

	n := g.SegmentCount()
	if want := 2*n + g.ThresholdGroups(); b.calls != want {
		t.Errorf("SetUniform4f called %d times, want %d", b.calls, want)
	}
	if b.invalid != 0 {
		t.Errorf("%d uploads resolved to InvalidLocation", b.invalid)
	}

	for i := 0; i < n; i++ {
		if got := b.values[UniformName(BiasUniform, i)]; got != g.BiasAt(i) {
			t.Errorf("bias_%d = %v, want %v", i, got, g.BiasAt(i))
		}
		if got := b.values[UniformName(ScaleUniform, i)]; got != g.ScaleAt(i) {
			t.Errorf("scale_%d = %v, want %v", i, got, g.ScaleAt(i))
		}
	}
	if got, want := b.values["threshold_0"], ([4]float32{0, 0.2, 0.5, 0.8}); got != want {
		t.Errorf("threshold_0 = %v, want %v", got, want)
	}
	if got := b.values["threshold_1"]; got[0] != 1 {
		t.Errorf("threshold_1.x = %v, want 1", got[0])
	}
	if _, ok := b.values[GeometryUniform]; ok {
		t.Error("Normalized.Upload set the geometry uniform")
	}
}

func TestUploadForeignProgram(t *testing.T) {
	g := MustNormalize([]RGBA{Red, Blue}, nil)
	p := ProgramFor(g, ExtendPad)
	other := ProgramFor(g, ExtendPad)
	b := newMapBinder(other)

	g.Upload(p, b)
	if b.invalid != b.calls {
		t.Errorf("%d of %d uploads resolved against a foreign program", b.calls-b.invalid, b.calls)
	}
}

func TestUniformName(t *testing.T) {
	if got := UniformName("threshold", 12); got != "threshold_12" {
		t.Errorf("UniformName() = %q, want threshold_12", got)
	}
}

func TestLinearGradientUpload(t *testing.T) {
	lg := NewLinearGradient(10, 20, 110, 20).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	g, err := lg.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	p := ProgramFor(g, lg.Extend)
	b := newMapBinder(p)

	if err := lg.Upload(p, g, b); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if got, want := b.values[GeometryUniform], ([4]float32{10, 20, 110, 20}); got != want {
		t.Errorf("geometry = %v, want %v", got, want)
	}
	if got := b.values["bias_0"]; got != Red.Channels() {
		t.Errorf("bias_0 = %v, want red", got)
	}
}

func TestLinearGradientUploadErrors(t *testing.T) {
	p, _ := NewProgram(2, ExtendPad)

	three := NewLinearGradient(0, 0, 1, 0).
		AddColorStop(0, Red).
		AddColorStop(0.5, Green).
		AddColorStop(1, Blue)
	g, err := three.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if err := three.Upload(p, g, newMapBinder(p)); !errors.Is(err, ErrProgramMismatch) {
		t.Errorf("Upload() to smaller program error = %v, want ErrProgramMismatch", err)
	}
}

func TestLinearGradientUploadReusesNormalized(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	lg := NewLinearGradient(0, 0, 64, 0).
		AddColorStop(0.25, Red).
		AddColorStop(0.75, Blue)
	g, err := lg.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	p := ProgramFor(g, lg.Extend)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b := newMapBinder(p)
	for range 3 {
		if err := lg.Upload(p, g, b); err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
	}
	if strings.Contains(buf.String(), "gradient: normalized") {
		t.Errorf("Upload() normalized the stops again:\n%s", buf.String())
	}
	if got, want := b.calls, 3*len(p.UniformNames()); got != want {
		t.Errorf("SetUniform4f calls = %d, want %d", got, want)
	}
	if b.invalid != 0 {
		t.Errorf("%d uploads to invalid locations", b.invalid)
	}
}
