package generator

import "strings"

// Placeholder 模型没有返回可用内容时使用。
const Placeholder = "No content generated."

// ParseArticle splits raw on the first newline. The title line loses every
// '*' emphasis marker and surrounding whitespace; the remaining lines are kept
// verbatim as the body.
func ParseArticle(raw string) Article {
	titleLine, body, _ := strings.Cut(raw, "\n")
	return Article{
		Title:   strings.TrimSpace(strings.ReplaceAll(titleLine, "*", "")),
		Content: body,
	}
}

// isBlank 把纯空白回复也视为空，避免发布空标题。
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
