package report

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler"
)

const (
	maxMetadataDepth = 8

	inProgressMarker          = "(in progress)"
	unserializablePlaceholder = "[unserializable structure]"
)

// Render turns a finished (or still running) profile into a
// multi-section human-readable report: an operation/duration header, a
// resource-usage block, a metadata block and a child-operations block.
// Absent optional fields simply omit their block; Render never fails.
//
// Children are listed one level deep with a tree-drawing prefix, not
// expanded into full nested reports.
func Render(p *yuuprofiler.Profile, theme Theme) string {
	return RenderIndent(p, theme, 0)
}

// RenderIndent is Render with every line shifted right by indentLevel
// two-space steps, for embedding a report inside a larger layout.
func RenderIndent(p *yuuprofiler.Profile, theme Theme, indentLevel int) string {
	if p == nil {
		return ""
	}
	if theme == nil {
		theme = PlainTheme{}
	}
	sb := &strings.Builder{}

	writeHeader(sb, theme, p)
	writeResourceUsage(sb, theme, p)
	writeMetadata(sb, theme, p)
	writeChildren(sb, theme, p)

	out := sb.String()
	if indentLevel > 0 {
		pad := strings.Repeat("  ", indentLevel)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		out = pad + strings.Join(lines, "\n"+pad) + "\n"
	}
	return out
}

func writeHeader(sb *strings.Builder, theme Theme, p *yuuprofiler.Profile) {
	sb.WriteString(theme.Title("Operation: ") + theme.Value(p.OperationName) + "\n")
	if p.Context != "" {
		sb.WriteString(theme.Title("Context:   ") + theme.Value(p.Context) + "\n")
	}
	if p.Finished() {
		sb.WriteString(theme.Title("Duration:  ") + theme.Value(formatDuration(p.Duration)) + "\n")
	} else {
		sb.WriteString(theme.Title("Duration:  ") + theme.Dim(inProgressMarker) + "\n")
	}
}

func writeResourceUsage(sb *strings.Builder, theme Theme, p *yuuprofiler.Profile) {
	diff := p.ResourceDiff
	if diff == nil {
		return
	}
	sb.WriteString(theme.Title("Resource usage:") + "\n")
	sb.WriteString("  heap used:  " + colorBySign(theme, diff.Memory.HeapUsed) + "\n")
	sb.WriteString("  heap total: " + colorBySign(theme, diff.Memory.HeapTotal) + "\n")
	sb.WriteString("  resident:   " + colorBySign(theme, diff.Memory.Resident) + "\n")
	sb.WriteString("  external:   " + colorBySign(theme, diff.Memory.External) + "\n")
	sb.WriteString(fmt.Sprintf("  cpu:        user %dµs, system %dµs\n", diff.CPU.UserTime, diff.CPU.SystemTime))
}

// positive memory delta is growth and rendered "bad", negative is
// reclaimed memory and rendered "good"
func colorBySign(theme Theme, n int64) string {
	s := formatBytesSigned(n)
	switch {
	case n > 0:
		return theme.Bad(s)
	case n < 0:
		return theme.Good(s)
	default:
		return theme.Dim(s)
	}
}

func writeMetadata(sb *strings.Builder, theme Theme, p *yuuprofiler.Profile) {
	if len(p.Metadata) == 0 {
		return
	}
	sb.WriteString(theme.Title("Metadata:") + "\n")
	seen := map[uintptr]bool{}
	seen[reflect.ValueOf(p.Metadata).Pointer()] = true
	for _, key := range sortedKeys(p.Metadata) {
		writeValue(sb, theme, key, p.Metadata[key], 1, seen)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeValue renders one metadata entry, recursing into maps and
// sequences. Recursion is bounded in depth and repeated map/slice
// references are replaced with a placeholder, so cyclic metadata cannot
// overflow the stack.
func writeValue(sb *strings.Builder, theme Theme, label string, v interface{}, depth int, seen map[uintptr]bool) {
	pad := strings.Repeat("  ", depth)
	if v == nil {
		sb.WriteString(pad + label + ": null\n")
		return
	}
	if depth > maxMetadataDepth {
		sb.WriteString(pad + label + ": " + theme.Dim(unserializablePlaceholder) + "\n")
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			sb.WriteString(pad + label + ": null\n")
			return
		}
		writeValue(sb, theme, label, rv.Elem().Interface(), depth, seen)

	case reflect.Map:
		// nil containers share pointer 0 and cannot form a cycle
		if !rv.IsNil() {
			if seen[rv.Pointer()] {
				sb.WriteString(pad + label + ": " + theme.Dim(unserializablePlaceholder) + "\n")
				return
			}
			seen[rv.Pointer()] = true
		}
		if rv.Len() == 0 {
			sb.WriteString(pad + label + ": {}\n")
			return
		}
		sb.WriteString(pad + label + ":\n")
		keys := make([]string, 0, rv.Len())
		byKey := map[string]reflect.Value{}
		for _, k := range rv.MapKeys() {
			ks := fmt.Sprint(k.Interface())
			keys = append(keys, ks)
			byKey[ks] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		for _, ks := range keys {
			writeValue(sb, theme, ks, byKey[ks].Interface(), depth+1, seen)
		}

	case reflect.Slice:
		if !rv.IsNil() {
			if seen[rv.Pointer()] {
				sb.WriteString(pad + label + ": " + theme.Dim(unserializablePlaceholder) + "\n")
				return
			}
			seen[rv.Pointer()] = true
		}
		writeSequence(sb, theme, label, rv, depth, seen)

	case reflect.Array:
		writeSequence(sb, theme, label, rv, depth, seen)

	default:
		sb.WriteString(pad + label + ": " + theme.Value(fmt.Sprint(v)) + "\n")
	}
}

func writeSequence(sb *strings.Builder, theme Theme, label string, rv reflect.Value, depth int, seen map[uintptr]bool) {
	pad := strings.Repeat("  ", depth)
	if rv.Len() == 0 {
		sb.WriteString(pad + label + ": []\n")
		return
	}
	sb.WriteString(pad + label + ":\n")
	for i := 0; i < rv.Len(); i++ {
		writeValue(sb, theme, fmt.Sprintf("[%d]", i), rv.Index(i).Interface(), depth+1, seen)
	}
}

func writeChildren(sb *strings.Builder, theme Theme, p *yuuprofiler.Profile) {
	if len(p.Children) == 0 {
		return
	}
	sb.WriteString(theme.Title("Child operations:") + "\n")
	for i, child := range p.Children {
		prefix := "├─ "
		if i == len(p.Children)-1 {
			prefix = "└─ "
		}
		line := "  " + prefix + theme.Value(child.OperationName)
		if child.Finished() {
			line += " (" + formatDuration(child.Duration)
			if child.ResourceDiff != nil {
				line += ", heap " + colorBySign(theme, child.ResourceDiff.Memory.HeapUsed)
			}
			line += ")"
		} else {
			line += " " + theme.Dim(inProgressMarker)
		}
		sb.WriteString(line + "\n")
	}
}
