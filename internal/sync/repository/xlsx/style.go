package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"trello-sheets-sync/internal/model"
)

var namedColors = map[string]string{
	"black": "000000",
	"white": "FFFFFF",
}

// color normalizes "#rrggbb" or a named color to excelize's RRGGBB form.
func color(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if named, ok := namedColors[c]; ok {
		return named
	}
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}

func (r *implRepository) style(s model.Style, wrap bool) (int, error) {
	key := styleKey{style: s, wrap: wrap}
	if id, ok := r.styles[key]; ok {
		return id, nil
	}

	st := &excelize.Style{}
	if s.Foreground != "" || s.FontSize > 0 {
		st.Font = &excelize.Font{Size: float64(s.FontSize)}
		if s.Foreground != "" {
			st.Font.Color = color(s.Foreground)
		}
	}
	if s.Background != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color(s.Background)}}
	}
	if wrap {
		st.Alignment = &excelize.Alignment{WrapText: true, Vertical: "top"}
	}

	id, err := r.file.NewStyle(st)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	r.styles[key] = id
	return id, nil
}
