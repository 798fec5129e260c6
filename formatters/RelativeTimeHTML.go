package formatters

import (
	"fmt"
	"html/template"
	"time"

	"github.com/stewardkit/steward"
)

// RelativeTimeHTML renders the same text as RelativeTime wrapped in a time
// element that carries the precise timestamp, for view layers that let the
// client keep the human readable distance fresh.
// The fallback text is emitted without markup.
func RelativeTimeHTML(t time.Time, r steward.Request, opts RelativeTimeOptions) template.HTML {
	text := RelativeTime(t, r, opts)
	if text == Fallback {
		return template.HTML(template.HTMLEscapeString(text))
	}

	return template.HTML(fmt.Sprintf(`<time datetime="%s">%s</time>`,
		template.HTMLEscapeString(t.Format(time.RFC3339)),
		template.HTMLEscapeString(text)))
}
