package generator

// Article 是模型产出的文章：首行为标题，其余为 Markdown 正文。
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
