//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gogpu/gradient"
	"github.com/gogpu/naga"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

func skipUnsupported(t *testing.T, err error) {
	t.Helper()
	errStr := err.Error()
	if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

func TestCompileProgram(t *testing.T) {
	modes := []gradient.ExtendMode{gradient.ExtendPad, gradient.ExtendRepeat, gradient.ExtendReflect}
	for _, segments := range []int{1, 2, 3, 5, 8, 13} {
		for _, mode := range modes {
			p, err := gradient.NewProgram(segments, mode)
			if err != nil {
				t.Fatal(err)
			}
			t.Run(p.String(), func(t *testing.T) {
				code, err := CompileProgram(p)
				if err != nil {
					skipUnsupported(t, err)
					t.Fatalf("CompileProgram() error = %v\n%s", err, p.FragmentSource())
				}
				if len(code) == 0 {
					t.Fatal("empty SPIR-V output")
				}
				if code[0] != spirvMagic {
					t.Errorf("magic = %#x, want %#x", code[0], spirvMagic)
				}
			})
		}
	}
}

func TestCompileWGSLInvalid(t *testing.T) {
	if _, err := CompileWGSL("fn broken( {"); err == nil {
		t.Error("CompileWGSL accepted invalid source")
	}
}

func TestCompileWGSLWordOrder(t *testing.T) {
	p, err := gradient.NewProgram(3, gradient.ExtendPad)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := naga.Compile(p.FragmentSource())
	if err != nil {
		skipUnsupported(t, err)
		t.Fatalf("naga.Compile() error = %v", err)
	}
	words, err := CompileWGSL(p.FragmentSource())
	if err != nil {
		t.Fatalf("CompileWGSL() error = %v", err)
	}
	if len(words)*4 != len(raw) {
		t.Fatalf("got %d words for %d bytes", len(words), len(raw))
	}
	for i, w := range words {
		if want := binary.LittleEndian.Uint32(raw[i*4:]); w != want {
			t.Fatalf("word %d = %#x, want %#x", i, w, want)
		}
	}
}
