package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueRange is the Sheets values API response: a 2-D grid with a header
// row. With UNFORMATTED_VALUE rendering, cells arrive as strings, numbers
// or bools, so the grid is decoded loosely and normalized per cell.
type ValueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

// CellString normalizes one cell to its string form. Numeric cells keep
// their full precision so date serials survive the round trip.
func CellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
