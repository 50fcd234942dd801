package models

// UniversityTemplate describes one selectable formatting template.
type UniversityTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TemplateInfo is the server's template metadata.
type TemplateInfo struct {
	DocumentTypes []string             `json:"document_types"`
	Universities  []UniversityTemplate `json:"universities"`
}
