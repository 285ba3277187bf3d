package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup to w and keeps the first write error. Text and attribute
// values go through templ's escaping; only literal markup is written raw.
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

func NewHTML(ctx context.Context, w io.Writer) *HTML {
	return &HTML{ctx: ctx, w: w}
}

// Raw writes trusted markup.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Trusted is markup that Printf writes without escaping.
type Trusted string

// Printf formats trusted markup; every string argument is escaped.
func (h *HTML) Printf(format string, args ...any) {
	escaped := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			escaped[i] = templ.EscapeString(s)
		} else {
			escaped[i] = a
		}
	}
	h.Raw(fmt.Sprintf(format, escaped...))
}

// Component renders a nested component in place.
func (h *HTML) Component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *HTML) Err() error {
	return h.err
}

// Component adapts a markup-writing function into a templ component.
func Component(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)
		fn(h)
		return h.Err()
	})
}

// SafeURL sanitizes a link target for an href or src attribute. Unsafe
// schemes are replaced by templ's failure URL.
func SafeURL(u string) string {
	return string(templ.URL(u))
}

// ClassIf returns class when cond holds, otherwise "".
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
