package entity

import "strings"

// FieldError is a single violated rule on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fieldLabel(e.Field) + " " + e.Message
}

// ValidationErrors aggregates every violated rule of a submission.
// Rules are collected, never short-circuited.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := v.Messages()
	return strings.Join(msgs, ", ")
}

// Messages returns the user-facing full messages, e.g. "Title can't be blank".
func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Error())
	}
	return out
}

// On reports whether any rule on the given field was violated.
func (v ValidationErrors) On(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Drop returns a copy without errors on the given field.
func (v ValidationErrors) Drop(field string) ValidationErrors {
	out := make(ValidationErrors, 0, len(v))
	for _, e := range v {
		if e.Field != field {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var fieldLabels = map[string]string{
	"email":                 "Email",
	"password":              "Password",
	"password_confirmation": "Password confirmation",
	"name":                  "Name",
	"profile":               "Profile",
	"occupation":            "Occupation",
	"position":              "Position",
	"title":                 "Title",
	"catch_copy":            "Catch copy",
	"concept":               "Concept",
	"image":                 "Image",
	"content":               "Content",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
