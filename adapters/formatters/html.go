package formatters

import (
	"fmt"

	"github.com/gomarkdown/markdown"

	"guildscore/domain/explanation"
)

// HTML implements ports.FormatterPort by rendering the same Markdown
// text the Markdown formatter produces through gomarkdown/markdown,
// the same way the teacher's ui/server.go converts Markdown to HTML,
// then wrapping the result in a minimal document shell rather than
// hand-building HTML a second time.
type HTML struct{}

func (HTML) Format(e explanation.Explanation) ([]byte, error) {
	mdBytes, err := Markdown{}.Format(e)
	if err != nil {
		return nil, err
	}

	body := markdown.ToHTML(mdBytes, nil, nil)

	out := fmt.Sprintf("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n%s\n</body></html>\n",
		e.OverallCard.Title, body)
	return []byte(out), nil
}
