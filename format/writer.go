package format

import (
	"fmt"
	"io"

	"github.com/katalvlaran/xcover/lattice"
)

// WriteSolution emits one accepted cover as a single line: the `|`-
// delimited concatenation of non-empty row names in selection order,
// followed by a terminating `|` and newline. Empty-named rows are omitted
// from the line but still counted toward the cover (spec.md §6).
func WriteSolution(w io.Writer, solution []*lattice.Vector) error {
	for _, v := range solution {
		if v.Name == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s|", v.Name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
