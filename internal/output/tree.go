package output

import (
	"path"
	"sort"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentGap  = "    "
)

type treeNode struct {
	name     string
	desc     string
	children []*treeNode
}

func (n *treeNode) isDir() bool { return len(n.children) > 0 }

// child returns the named child, creating it on first use.
func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir() != b.isDir() {
			return a.isDir()
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

type treeLine struct {
	text string
	desc string
}

func (n *treeNode) lines(indent string, out []treeLine) []treeLine {
	for i, c := range n.children {
		branch, next := branchMid, indentPipe
		if i == len(n.children)-1 {
			branch, next = branchEnd, indentGap
		}
		name := c.name
		if c.isDir() {
			name += "/"
		}
		out = append(out, treeLine{text: indent + branch + name, desc: c.desc})
		out = c.lines(indent+next, out)
	}
	return out
}

// RenderFileTree renders project-relative paths below root, directories
// first. Non-empty descriptions are aligned two columns past the widest entry.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{}
	for p, desc := range files {
		n := top
		for _, part := range strings.Split(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/") {
			n = n.child(part)
		}
		n.desc = desc
	}
	top.sort()

	lines := top.lines("", nil)
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")
	for _, l := range lines {
		sb.WriteString(l.text)
		if l.desc != "" {
			sb.WriteString(strings.Repeat(" ", width-len([]rune(l.text))+2))
			sb.WriteString(StyleMuted.Render(l.desc))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSimpleTree renders paths without descriptions.
func RenderSimpleTree(root string, files []string) string {
	m := make(map[string]string, len(files))
	for _, f := range files {
		m[f] = ""
	}
	return RenderFileTree(root, m)
}
