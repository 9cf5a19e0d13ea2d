//go:build linux || darwin || windows

package clip

import (
	"fmt"

	"golang.design/x/clipboard"
)

// nativeFormat maps a format type string onto the formats the
// golang.design/x/clipboard package understands.
func nativeFormat(typ string) (clipboard.Format, bool) {
	switch {
	case isTextType(typ):
		return clipboard.FmtText, true
	case typ == TypeImage:
		return clipboard.FmtImage, true
	}
	return 0, false
}

// nativeGet reads the clipboard buffer for typ, returning nil for types the
// native layer cannot represent.
func nativeGet(typ string) []byte {
	f, ok := nativeFormat(typ)
	if !ok {
		return nil
	}
	return clipboard.Read(f)
}

// nativePut writes data to the clipboard buffer under typ.
func nativePut(typ string, data []byte) error {
	f, ok := nativeFormat(typ)
	if !ok {
		return fmt.Errorf("unsupported format type %q", typ)
	}
	clipboard.Write(f, data)
	return nil
}

// nativeTypes probes the clipboard buffer for the formats it currently holds.
func nativeTypes() []string {
	var out []string
	if len(clipboard.Read(clipboard.FmtText)) > 0 {
		out = append(out, TypeText)
	}
	if len(clipboard.Read(clipboard.FmtImage)) > 0 {
		out = append(out, TypeImage)
	}
	return out
}
