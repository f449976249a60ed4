package entity

import "time"

// Prototype is the primary content entity. It is owned by exactly one user,
// set at creation and never transferred. ImageRef is an opaque reference
// issued by the image store; the core never inspects it.
type Prototype struct {
	ID         string
	Title      string
	CatchCopy  string
	Concept    string
	ImageRef   string
	UserID     string
	AuthorName string // populated by listing queries, not validated
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate collects every violated rule. All four content fields must be
// present for the prototype to persist.
func (p *Prototype) Validate() ValidationErrors {
	var errs ValidationErrors
	if blank(p.Title) {
		errs = append(errs, FieldError{Field: "title", Message: "can't be blank"})
	}
	if blank(p.CatchCopy) {
		errs = append(errs, FieldError{Field: "catch_copy", Message: "can't be blank"})
	}
	if blank(p.Concept) {
		errs = append(errs, FieldError{Field: "concept", Message: "can't be blank"})
	}
	if blank(p.ImageRef) {
		errs = append(errs, FieldError{Field: "image", Message: "can't be blank"})
	}
	return errs
}
