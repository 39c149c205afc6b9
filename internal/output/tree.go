package output

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// noteColumn is where file notes start.
	noteColumn = 40
)

type treeNode struct {
	name     string
	note     string
	dir      bool
	children []*treeNode
}

// RenderFileTree renders slash-separated paths relative to root as a
// tree, directories first. files maps each path to a short note, such
// as the status of the file, printed beside it.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, dir: true}
	for path, note := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := top
		for i, part := range parts {
			leaf := i == len(parts)-1
			child := current.child(part)
			if child == nil {
				child = &treeNode{name: part, dir: !leaf}
				current.children = append(current.children, child)
			}
			if leaf {
				child.note = note
			}
			current = child
		}
	}
	top.sort()

	var sb strings.Builder
	sb.WriteString(StyleAction.Render(top.name + "/"))
	sb.WriteString("\n")
	for i, c := range top.children {
		c.render(&sb, "", i == len(top.children)-1)
	}
	return sb.String()
}

func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *treeNode) sort() {
	slices.SortFunc(n.children, func(a, b *treeNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}
	name := n.name
	if n.dir {
		name += "/"
	}

	line := prefix + connector + name
	if n.note != "" {
		pad := max(noteColumn-len([]rune(line)), 2)
		line += strings.Repeat(" ", pad) + StyleDim.Render(n.note)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	childPrefix := prefix + treeVert
	if last {
		childPrefix = prefix + treeSpace
	}
	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}
