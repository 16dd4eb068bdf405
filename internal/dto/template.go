package dto

// TemplateForm carries the document-template dialog fields. Content is rich
// text with {{placeholder}} tokens.
type TemplateForm struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Category string `form:"category" json:"category"`
	Content  string `form:"content" json:"content"`
}

// RenderedDocument is a template with its event tokens substituted.
type RenderedDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
