package templates

import "strings"

var texReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// EscapeTeX makes arbitrary user text safe to embed in TeX markup.
func EscapeTeX(s string) string {
	return texReplacer.Replace(s)
}
