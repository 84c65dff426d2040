package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSourcesSplit(t *testing.T) {
	for _, s := range Slots {
		src := Default(s)
		if src == "" {
			t.Fatalf("Default(%s) is empty", s)
		}
		st, err := SplitStages(src)
		if err != nil {
			t.Fatalf("SplitStages(Default(%s)) error = %v", s, err)
		}
		if !strings.HasPrefix(st.Vertex, "#version 330") || !strings.HasPrefix(st.Fragment, "#version 330") {
			t.Errorf("%s stages do not start with #version: %q / %q", s, st.Vertex[:20], st.Fragment[:20])
		}
	}
	if !strings.Contains(Default(InstanceSlot), UniformInstanceColors+"[100]") {
		t.Error("instance shader does not declare instanceColors[100]")
	}
	if !strings.Contains(Default(InstanceSlot), AttribInstanceTransform) {
		t.Error("instance shader does not declare instanceTransform")
	}
}

func TestSplitStagesFragmentOnly(t *testing.T) {
	src := "//@fragment\n#version 330\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	st, err := SplitStages(src)
	if err != nil {
		t.Fatalf("SplitStages() error = %v", err)
	}
	if st.Vertex != "" {
		t.Errorf("Vertex = %q, want empty", st.Vertex)
	}
	if !strings.Contains(st.Fragment, "void main()") {
		t.Errorf("Fragment = %q", st.Fragment)
	}
}

func TestSplitStagesErrors(t *testing.T) {
	frag := "#version 330\nvoid main() {}\n"
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{"no markers", frag, "missing"},
		{"vertex only", "//@vertex\n" + frag, "missing fragment section"},
		{"duplicate", "//@fragment\n" + frag + "//@fragment\n" + frag, "duplicate fragment section"},
		{"preamble code", "float x;\n//@fragment\n" + frag, "code before the first stage marker"},
		{"no version", "//@fragment\nvoid main() {}\n", "#version"},
		{"no main", "//@fragment\n#version 330\nvoid mane() {}\n", "no void main()"},
		{"open brace", "//@fragment\n#version 330\nvoid main() {\n", "unbalanced '{'"},
		{"stray paren", "//@fragment\n#version 330\nvoid main() { x = 1); }\n", "unexpected ')'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitStages(tt.src)
			if err == nil {
				t.Fatal("SplitStages() error = nil")
			}
			if !errors.Is(err, ErrCompile) {
				t.Errorf("error %v is not ErrCompile", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error = %q, want it to mention %q", err, tt.reason)
			}
		})
	}
}

func TestPreflightIgnoresComments(t *testing.T) {
	src := "//@fragment\n// leading comment { (\n#version 330\n/* void main() { */\nvoid main() {}\n"
	if _, err := SplitStages(src); err != nil {
		t.Errorf("SplitStages() error = %v", err)
	}
}

func TestStripCommentsKeepsLines(t *testing.T) {
	in := "a // x\n/* b\nc */d\n"
	got := stripComments(in)
	if strings.Count(got, "\n") != strings.Count(in, "\n") {
		t.Errorf("stripComments(%q) = %q, line count changed", in, got)
	}
	if strings.Contains(got, "x") || strings.Contains(got, "b") {
		t.Errorf("stripComments(%q) = %q, comments kept", in, got)
	}
}

func TestParseSlot(t *testing.T) {
	for _, s := range Slots {
		got, err := ParseSlot(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSlot(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSlot("vertex"); err == nil {
		t.Error("ParseSlot(vertex) error = nil")
	}
	if InstanceSlot.Other() != CustomSlot || CustomSlot.Other() != InstanceSlot {
		t.Error("Other() is not an involution")
	}
}
