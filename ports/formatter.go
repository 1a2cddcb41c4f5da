package ports

import "guildscore/domain/explanation"

// FormatterPort renders a generated Explanation into a specific
// output representation (Markdown, JSON, HTML).
type FormatterPort interface {
	Format(e explanation.Explanation) ([]byte, error)
}
