package tetromino

import (
	"fmt"
	"strings"
)

// Glyph characters accepted by ParseGlyph.
const (
	GlyphFilled = 'X'
	GlyphEmpty  = '-'
)

// ParseGlyph compiles four rows of four glyph characters into a Mask.
// Besides GlyphFilled, 'x', 'o' and '#' mark a filled cell; besides
// GlyphEmpty, '.' and ' ' mark an empty one.
func ParseGlyph(rows [Side]string) (Mask, error) {
	var m Mask
	for row, line := range rows {
		if len(line) != Side {
			return 0, fmt.Errorf("glyph row %d: want %d cells, got %q", row, Side, line)
		}
		for col := range Side {
			switch c := line[col]; c {
			case GlyphFilled, 'x', 'o', '#':
				m |= Bit(row, col)
			case GlyphEmpty, '.', ' ':
			default:
				return 0, fmt.Errorf("glyph row %d col %d: unexpected %q", row, col, c)
			}
		}
	}
	return m, nil
}

// MustGlyph is ParseGlyph for table literals. It panics on a malformed grid.
func MustGlyph(rows ...string) Mask {
	if len(rows) != Side {
		panic(fmt.Sprintf("tetromino: glyph needs %d rows, got %d", Side, len(rows)))
	}
	m, err := ParseGlyph([Side]string(rows))
	if err != nil {
		panic("tetromino: " + err.Error())
	}
	return m
}

// ParseGlyphString accepts the String form of a mask: four rows separated by
// '/' or newlines.
func ParseGlyphString(s string) (Mask, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '\n'
	})
	if len(fields) != Side {
		return 0, fmt.Errorf("glyph %q: want %d rows, got %d", s, Side, len(fields))
	}
	return ParseGlyph([Side]string(fields))
}
