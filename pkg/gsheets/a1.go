package gsheets

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// ColumnLetter converts a 1-based column number to its A1 letters.
func ColumnLetter(col int) string {
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}

// A1 returns the quoted A1 reference of a 1-based cell on sheet.
func A1(sheet string, row, col int) string {
	return fmt.Sprintf("%s!%s%d", QuoteSheet(sheet), ColumnLetter(col), row)
}

// QuoteSheet quotes a sheet title for use in A1 notation.
func QuoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
}

// ParseColor converts "#rrggbb" or a named color into a Sheets color.
func ParseColor(color string) (*sheets.Color, error) {
	hex := strings.ToLower(strings.TrimSpace(color))
	if named, ok := namedColors[hex]; ok {
		hex = named
	}
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("unsupported color %q", color)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unsupported color %q: %w", color, err)
	}
	return &sheets.Color{
		Red:   float64((v>>16)&0xff) / 255,
		Green: float64((v>>8)&0xff) / 255,
		Blue:  float64(v&0xff) / 255,
	}, nil
}
