package model

import "strings"

// ProjectType is the kind of project a prospective client is asking about.
type ProjectType string

const (
	ProjectTypeCommercial  ProjectType = "Commercial"
	ProjectTypeMusicVideo  ProjectType = "Music Video"
	ProjectTypeDocumentary ProjectType = "Documentary"
	ProjectTypeOther       ProjectType = "Other"
)

// ProjectTypes lists the selectable project types in display order. The first
// entry is the default selection.
var ProjectTypes = []ProjectType{
	ProjectTypeCommercial,
	ProjectTypeMusicVideo,
	ProjectTypeDocumentary,
	ProjectTypeOther,
}

// Valid reports whether p is one of the known project types.
func (p ProjectType) Valid() bool {
	for _, known := range ProjectTypes {
		if p == known {
			return true
		}
	}
	return false
}

// ParseProjectType maps a posted select value to a ProjectType. An empty value
// yields the default selection. Unknown values are returned unchanged so that
// validation can reject them.
func ParseProjectType(raw string) ProjectType {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ProjectTypes[0]
	}
	for _, known := range ProjectTypes {
		if strings.EqualFold(raw, string(known)) {
			return known
		}
	}
	return ProjectType(raw)
}

// Submission is the set of contact form values gathered at the moment the
// user submits the form.
type Submission struct {
	Name        string
	Email       string
	ProjectType ProjectType
	Message     string
}

// Normalized returns a copy with surrounding whitespace trimmed from every
// text field and the project type defaulted.
func (s Submission) Normalized() Submission {
	pt := s.ProjectType
	if strings.TrimSpace(string(pt)) == "" {
		pt = ProjectTypes[0]
	}
	return Submission{
		Name:        strings.TrimSpace(s.Name),
		Email:       strings.TrimSpace(s.Email),
		ProjectType: pt,
		Message:     strings.TrimSpace(s.Message),
	}
}

// IsZero reports whether no field carries user input. The default project
// type does not count as input.
func (s Submission) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.Message == "" &&
		(s.ProjectType == "" || s.ProjectType == ProjectTypes[0])
}

// Form field keys, shared by the HTML form and the outbound multipart body.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldProjectType = "projectType"
	FieldMessage     = "message"
)
