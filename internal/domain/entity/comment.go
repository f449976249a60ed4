package entity

import "time"

// Comment belongs to exactly one prototype and one authoring user, both
// immutable after creation. Comments are never edited; they are removed
// only when their parent prototype is destroyed.
type Comment struct {
	ID          string
	Content     string
	UserID      string
	PrototypeID string
	AuthorName  string // populated by listing queries, not validated
	CreatedAt   time.Time
}

func (c *Comment) Validate() ValidationErrors {
	var errs ValidationErrors
	if blank(c.Content) {
		errs = append(errs, FieldError{Field: "content", Message: "can't be blank"})
	}
	return errs
}
