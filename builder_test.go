package gradient

import "testing"

func TestShaderBuilderIndentation(t *testing.T) {
	b := NewShaderBuilder()
	b.AddStatement("fn f() {")
	b.Scoped(func() {
		b.AddStatement("if (x) {")
		b.Scoped(func() { b.AddStatement("return;") })
		b.AddStatement("}")
	})
	b.AddStatement("}")

	want := "fn f() {\n    if (x) {\n        return;\n    }\n}\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if b.Depth() != 0 {
		t.Errorf("Depth() = %d after balanced scopes, want 0", b.Depth())
	}
}

func TestShaderBuilderEmpty(t *testing.T) {
	b := NewShaderBuilder()
	if b.String() != "" {
		t.Errorf("String() = %q, want empty", b.String())
	}
	if len(b.Lines()) != 0 {
		t.Errorf("Lines() = %v, want none", b.Lines())
	}
}

func TestShaderBuilderUnindentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unindent() at depth 0 did not panic")
		}
	}()
	NewShaderBuilder().Unindent()
}

func TestShaderBuilderScopedReleasesOnPanic(t *testing.T) {
	b := NewShaderBuilder()
	func() {
		defer func() { _ = recover() }()
		b.Scoped(func() {
			if b.Depth() != 1 {
				t.Errorf("Depth() inside Scoped = %d, want 1", b.Depth())
			}
			panic("boom")
		})
	}()
	if b.Depth() != 0 {
		t.Errorf("Depth() after panicking scope = %d, want 0", b.Depth())
	}
}

func TestShaderBuilderLinesCopy(t *testing.T) {
	b := NewShaderBuilder()
	b.AddStatement("a;")
	lines := b.Lines()
	lines[0] = "changed"
	if b.Lines()[0] != "a;" {
		t.Error("Lines() exposed internal storage")
	}
}
