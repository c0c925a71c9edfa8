package theme

type FontSize string

const (
	FontSmall      FontSize = "small"
	FontNormal     FontSize = "normal"
	FontLarge      FontSize = "large"
	FontExtraLarge FontSize = "extra-large"
)

// FontSpec is the rendered value of a FontSize. Value is the CSS-style size;
// Scale drives text density in the terminal (1 = most compact).
type FontSpec struct {
	Value string
	Scale int
}

var fontSizes = map[FontSize]FontSpec{
	FontSmall:      {Value: "14px", Scale: 1},
	FontNormal:     {Value: "16px", Scale: 2},
	FontLarge:      {Value: "18px", Scale: 3},
	FontExtraLarge: {Value: "20px", Scale: 4},
}

var fontOrder = []FontSize{FontSmall, FontNormal, FontLarge, FontExtraLarge}

// FontSizes returns the sizes from smallest to largest.
func FontSizes() []FontSize {
	return append([]FontSize(nil), fontOrder...)
}

func ParseFontSize(s string) FontSize {
	if _, ok := fontSizes[FontSize(s)]; ok {
		return FontSize(s)
	}
	return FontNormal
}

// Spec looks up f, treating unknown sizes as FontNormal.
func (f FontSize) Spec() FontSpec {
	if spec, ok := fontSizes[f]; ok {
		return spec
	}
	return fontSizes[FontNormal]
}

// AtLeastLarge reports whether f is large or extra-large.
func (f FontSize) AtLeastLarge() bool {
	return f == FontLarge || f == FontExtraLarge
}

// Next returns the following size, wrapping from extra-large to small.
func (f FontSize) Next() FontSize {
	for i, s := range fontOrder {
		if s == f {
			return fontOrder[(i+1)%len(fontOrder)]
		}
	}
	return FontNormal
}
