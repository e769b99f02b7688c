package common

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a collection structure.
// Footprints form a tree: each node carries the bytes owned by the structure
// itself and links to the footprints of its subcomponents.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
	note     string
}

// NewMemoryFootprint creates a new footprint node reporting the given
// number of bytes for the structure itself, excluding subcomponents.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the footprint of a subcomponent under the given name.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	mf.children[name] = child
}

// SetNote attaches an informative text shown next to the node in the summary.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the number of bytes consumed by the structure itself,
// excluding its subcomponents.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the number of bytes consumed by the structure including all
// its subcomponents. Footprint nodes reachable through several paths are
// counted only once.
func (mf *MemoryFootprint) Total() uintptr {
	visited := make(map[*MemoryFootprint]struct{})
	return mf.total(visited)
}

func (mf *MemoryFootprint) total(visited map[*MemoryFootprint]struct{}) uintptr {
	if _, seen := visited[mf]; seen {
		return 0
	}
	visited[mf] = struct{}{}
	sum := mf.value
	for _, child := range mf.children {
		sum += child.total(visited)
	}
	return sum
}

// String renders the footprint as a tree summary with one line per node.
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.writeTo(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) writeTo(sb *strings.Builder, path string) {
	sb.WriteString(byteCountToString(mf.Total()))
	sb.WriteRune(' ')
	sb.WriteString(path)
	if mf.note != "" {
		sb.WriteRune(' ')
		sb.WriteString(mf.note)
	}
	sb.WriteRune('\n')

	// Children are listed in a stable order to make summaries comparable.
	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].writeTo(sb, path+"/"+name)
	}
}

func byteCountToString(bytes uintptr) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
