package texts

import (
	"embed"
	"fmt"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_texts.go -package mocks social_osint/texts ITexts

//go:embed snippets
var fs embed.FS

// Snippet IDs
const (
	SystemPrompt  = "system_prompt.md"
	UserPrompt    = "user_prompt.md"
	ImagePrompt   = "image_prompt.md"
	ImageAnalysis = "image_analysis.md"
	ReportHeader  = "report_header.md"
	NoData        = "no_data.txt"
)

type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) string {
	fn := fmt.Sprintf("snippets/%s", id)
	bytes, err := fs.ReadFile(fn)
	if err != nil {
		return ""
	}
	return string(bytes)
}

// WithVals fills {{name}} placeholders in a single pass, so values are never themselves expanded.
func (t *texts) WithVals(id string, vals map[string]string) string {
	pairs := make([]string, 0, len(vals)*2)
	for ph, val := range vals {
		pairs = append(pairs, fmt.Sprintf("{{%s}}", ph), val)
	}
	return strings.NewReplacer(pairs...).Replace(t.Get(id))
}
