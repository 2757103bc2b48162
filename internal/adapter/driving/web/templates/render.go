// Package templates holds the templ components of the web GUI.
package templates

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup to w and keeps the first write error so
// components can emit a sequence of fragments and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes s HTML-escaped; safe in element bodies and quoted attributes.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}
