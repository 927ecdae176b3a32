package yamlskema

import (
	"strconv"
	"strings"
)

// Segment is one step of a Breadcrumb: an object field name or a
// sequence/hash index.
type Segment struct {
	Name  string
	Index int
}

// NameSegment returns a field-name path segment.
func NameSegment(name string) Segment { return Segment{Name: name, Index: -1} }

// IndexSegment returns an element-index path segment.
func IndexSegment(index int) Segment { return Segment{Index: index} }

// Breadcrumb is the path from the root of a compile or validate call down to
// the node an error refers to. Segments are pushed leaf-to-root as the error
// bubbles up the recursion, so display order is the reverse of push order.
type Breadcrumb struct {
	segments []Segment
}

// Push appends a segment in leaf-to-root order.
func (b *Breadcrumb) Push(seg Segment) {
	b.segments = append(b.segments, seg)
}

// String renders the path root-to-leaf, ".name" for fields and "[n]" for
// indices.
func (b Breadcrumb) String() string {
	var sb strings.Builder
	for i := len(b.segments) - 1; i >= 0; i-- {
		seg := b.segments[i]
		if seg.Index >= 0 {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
		} else {
			sb.WriteByte('.')
			sb.WriteString(seg.Name)
		}
	}
	return sb.String()
}
