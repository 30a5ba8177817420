package fragment

import "strings"

// attributeEscaper runs in a single pass, so the '&' of an entity it emits is
// never escaped again.
var attributeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"[", "&#91;",
	"]", "&#93;",
	"(", "&#40;",
	")", "&#41;",
	"`", "&#96;",
)

// EscapeAttribute escapes text for use inside an HTML attribute value or a
// Markdown link title. No other builder escapes its input.
func EscapeAttribute(s string) string {
	return attributeEscaper.Replace(s)
}
