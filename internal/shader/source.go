package shader

import (
	"embed"
	"regexp"
	"strings"
)

// Stage markers split one editable text into its vertex and fragment sources.
const (
	VertexMarker   = "//@vertex"
	FragmentMarker = "//@fragment"
)

// Names shared between the default sources and the GPU compiler.
const (
	AttribInstanceTransform = "instanceTransform"
	UniformInstanceColors   = "instanceColors"
	UniformTime             = "time"
	UniformResolution       = "resolution"
	// MaxInstances is the length of the instanceColors array in the default instance shader.
	MaxInstances = 100
)

//go:embed defaults/*.glsl
var defaults embed.FS

// Default returns the built-in source for slot.
func Default(slot Slot) string {
	name := "defaults/custom.glsl"
	if slot == InstanceSlot {
		name = "defaults/instance.glsl"
	}
	data, err := defaults.ReadFile(name)
	if err != nil {
		return ""
	}
	return string(data)
}

// Stages holds per-stage GLSL. An empty Vertex means the backend's default vertex stage.
type Stages struct {
	Vertex   string
	Fragment string
}

var mainFunc = regexp.MustCompile(`\bvoid\s+main\s*\(`)

// SplitStages cuts src at the stage markers and runs a syntax preflight on each stage.
// Text before the first marker may only hold comments.
func SplitStages(src string) (Stages, error) {
	if !hasMarker(src) {
		return Stages{}, &CompileError{Slot: NoSlot, Reason: "missing " + VertexMarker + " or " + FragmentMarker + " section"}
	}
	var st Stages
	var cur *string
	var b strings.Builder
	seen := map[string]bool{}

	flush := func() {
		if cur != nil {
			*cur = b.String()
		}
		b.Reset()
	}
	for i, line := range strings.Split(src, "\n") {
		switch strings.TrimSpace(line) {
		case VertexMarker, FragmentMarker:
			name := "vertex"
			target := &st.Vertex
			if strings.TrimSpace(line) == FragmentMarker {
				name, target = "fragment", &st.Fragment
			}
			if seen[name] {
				return Stages{}, &CompileError{Slot: NoSlot, Stage: name, Line: i + 1, Reason: "duplicate " + name + " section"}
			}
			seen[name] = true
			flush()
			cur = target
			continue
		}
		if cur == nil {
			t := strings.TrimSpace(line)
			if t != "" && !strings.HasPrefix(t, "//") {
				return Stages{}, &CompileError{Slot: NoSlot, Line: i + 1, Reason: "code before the first stage marker"}
			}
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	flush()

	if !seen["fragment"] {
		return Stages{}, &CompileError{Slot: NoSlot, Stage: "fragment", Reason: "missing fragment section"}
	}
	if seen["vertex"] {
		if err := preflight("vertex", st.Vertex); err != nil {
			return Stages{}, err
		}
	}
	if err := preflight("fragment", st.Fragment); err != nil {
		return Stages{}, err
	}
	return st, nil
}

func hasMarker(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		if t := strings.TrimSpace(line); t == VertexMarker || t == FragmentMarker {
			return true
		}
	}
	return false
}

// preflight catches the mistakes that would otherwise only show up as a driver log line.
func preflight(stage, code string) error {
	body := stripComments(code)
	if !strings.HasPrefix(strings.TrimSpace(body), "#version") {
		return &CompileError{Slot: NoSlot, Stage: stage, Reason: "#version must be the first directive"}
	}
	if !mainFunc.MatchString(body) {
		return &CompileError{Slot: NoSlot, Stage: stage, Reason: "no void main() entry point"}
	}
	pairs := []struct{ open, close byte }{{'{', '}'}, {'(', ')'}, {'[', ']'}}
	for _, p := range pairs {
		depth := 0
		line := 1
		for i := 0; i < len(body); i++ {
			switch body[i] {
			case '\n':
				line++
			case p.open:
				depth++
			case p.close:
				depth--
				if depth < 0 {
					return &CompileError{Slot: NoSlot, Stage: stage, Line: line, Reason: "unexpected '" + string(p.close) + "'"}
				}
			}
		}
		if depth != 0 {
			return &CompileError{Slot: NoSlot, Stage: stage, Reason: "unbalanced '" + string(p.open) + "'"}
		}
	}
	return nil
}

// stripComments blanks // and /* */ comments, keeping newlines so line numbers hold.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
			continue
		}
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				if s[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
