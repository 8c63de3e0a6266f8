package report

// Theme colorizes report fragments. The renderer only distinguishes
// roles; concrete palettes belong to whatever sink owns the output
// device and are supplied by the caller.
type Theme interface {
	Title(s string) string
	Value(s string) string
	Good(s string) string
	Bad(s string) string
	Dim(s string) string
}

// PlainTheme renders without any styling.
type PlainTheme struct{}

func (PlainTheme) Title(s string) string { return s }
func (PlainTheme) Value(s string) string { return s }
func (PlainTheme) Good(s string) string  { return s }
func (PlainTheme) Bad(s string) string   { return s }
func (PlainTheme) Dim(s string) string   { return s }
