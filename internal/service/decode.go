package service

import "golang.org/x/net/html"

// DecodeEntities converts HTML character references into literal characters.
// Named references use the HTML5 table, numeric ones (&#039; &#x27;) are
// decoded arithmetically, the same way a browser would. Unknown references
// are left as is.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

func decodeAll(values []string) []string {
	decoded := make([]string, 0, len(values))
	for _, v := range values {
		decoded = append(decoded, DecodeEntities(v))
	}
	return decoded
}
