package console

import (
	"casino_console/internal/model"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PrintGrid печатает поле построчно: "A | B | C"
func PrintGrid(w io.Writer, grid model.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		symbols := grid.Row(row)
		cells := make([]string, len(symbols))
		for i, s := range symbols {
			cells[i] = string(s)
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

func formatLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, " ")
}
