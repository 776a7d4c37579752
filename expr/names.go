package expr

import (
	"regexp"
	"strings"
)

const mathQualifier = "Math."

var qualified = regexp.MustCompile(`\bMath\.([A-Za-z_][A-Za-z0-9_]*)`)

// unqualify removes the "Math." qualifier from names that are known
// functions or constants. Other qualified names are left alone and fail to
// compile. offs maps every byte offset in the result, plus its length, to
// the corresponding offset in src.
func unqualify(src string, table map[string]*builtin) (string, []int) {
	var sb strings.Builder
	offs := make([]int, 0, len(src)+1)
	last := 0
	for _, m := range qualified.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		if _, ok := table[name]; !ok {
			if _, ok := constants[name]; !ok {
				continue
			}
		}
		for i := last; i < m[0]; i++ {
			offs = append(offs, i)
		}
		sb.WriteString(src[last:m[0]])
		last = m[0] + len(mathQualifier)
	}
	for i := last; i <= len(src); i++ {
		offs = append(offs, i)
	}
	sb.WriteString(src[last:])
	return sb.String(), offs
}
