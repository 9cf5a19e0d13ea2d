package clip

import "strings"

// Format types natively understood by the golang.design/x/clipboard based
// backends. Other types are only reachable on Linux through xclip targets.
const (
	TypeText  = "text/plain"
	TypeImage = "image/png"
)

// isTextType reports whether typ names plain text, with or without a
// parameter suffix ("text/plain;charset=utf-8").
func isTextType(typ string) bool {
	return typ == TypeText || strings.HasPrefix(typ, TypeText+";")
}
