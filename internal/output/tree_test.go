package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("demo", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := stripAnsi(RenderFileTree("demo", map[string]string{
		"README.md":        "Project readme",
		"demo/__init__.py": "Package init",
		"tests/tests.py":   "Test stub",
		"LICENSE":          "",
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "demo/", lines[0])
	assert.Contains(t, lines[1], "demo/")
	assert.Contains(t, lines[3], "tests/")
	assert.Contains(t, out, "__init__.py")
	assert.Contains(t, out, "Package init")
	assert.Contains(t, lines[len(lines)-1], "└── README.md")
}

func TestRenderFileTree_DescriptionAlignment(t *testing.T) {
	out := stripAnsi(RenderFileTree("demo", map[string]string{
		"LICENSE":   "License text",
		"setup.py":  "Packaging manifest",
		"mypy.ini":  "Type checker config",
		"README.md": "Project readme",
	}))

	var cols []int
	for _, line := range strings.Split(out, "\n") {
		for _, desc := range []string{"License text", "Packaging manifest", "Type checker config"} {
			if idx := strings.Index(line, desc); idx >= 0 {
				cols = append(cols, len([]rune(line[:idx])))
			}
		}
	}
	assert.Len(t, cols, 3)
	assert.Equal(t, cols[0], cols[1])
	assert.Equal(t, cols[1], cols[2])
}

func TestRenderSimpleTree(t *testing.T) {
	out := stripAnsi(RenderSimpleTree("demo/", []string{"a.txt", "b/c.txt"}))
	assert.Equal(t, "demo/\n├── b/\n│   └── c.txt\n└── a.txt\n", out)
}
