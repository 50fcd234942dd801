package models

import (
	"path/filepath"
	"strings"
)

// DocumentType classifies the document being formatted.
type DocumentType string

const (
	DocumentAcademicPapers   DocumentType = "Academic Papers"
	DocumentThesis           DocumentType = "Thesis"
	DocumentInternshipReport DocumentType = "Internship Report"
	DocumentDissertation     DocumentType = "Dissertation"
)

// DocumentTypes lists the selectable document types in display order.
var DocumentTypes = []DocumentType{
	DocumentAcademicPapers,
	DocumentThesis,
	DocumentInternshipReport,
	DocumentDissertation,
}

func (d DocumentType) Valid() bool {
	for _, t := range DocumentTypes {
		if d == t {
			return true
		}
	}
	return false
}

// University selects the formatting template.
type University string

const (
	UniversityNationalStandard University = "National Standard"
	UniversityITB              University = "ITB"
	UniversityUI               University = "UI"
	UniversityUGM              University = "UGM"
)

// Universities lists the selectable templates in display order.
var Universities = []University{
	UniversityNationalStandard,
	UniversityITB,
	UniversityUI,
	UniversityUGM,
}

func (u University) Valid() bool {
	for _, t := range Universities {
		if u == t {
			return true
		}
	}
	return false
}

// StagedFile is a file selected by the user but not yet submitted.
// It is replaced wholesale on re-selection.
type StagedFile struct {
	Name      string
	Path      string
	SizeBytes int64
}

// AllowedExtension reports whether name has a .doc or .docx extension,
// case-insensitively.
func AllowedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".doc", ".docx":
		return true
	}
	return false
}

// FormatRequest carries one staged file plus its formatting options.
// Immutable once submitted.
type FormatRequest struct {
	File         StagedFile
	DocumentType DocumentType
	University   University
}
