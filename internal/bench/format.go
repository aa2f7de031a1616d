// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"
)

// FormatVector renders v in the same bracketed style as matrix.Dense.String,
// e.g. "[1, 2, 3]".
func FormatVector(v []float32) string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
