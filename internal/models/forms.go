package models

// FormField describes one input of a form a client should render.
type FormField struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Type      string   `json:"type"`
	Required  bool     `json:"required"`
	MaxLength int      `json:"max_length,omitempty"`
	Min       int      `json:"min,omitempty"`
	Value     string   `json:"value,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Form is the payload a client renders in place of an HTML form.
type Form struct {
	Fields         []FormField `json:"fields"`
	NonFieldErrors []string    `json:"non_field_errors,omitempty"`
}

// Bind returns a copy of the form with submitted values and errors attached.
// Fields of type "password" never echo their value back.
func (f Form) Bind(values map[string]string, errs FieldErrors) Form {
	bound := Form{Fields: make([]FormField, len(f.Fields))}
	for i, field := range f.Fields {
		if field.Type != "password" {
			field.Value = values[field.Name]
		}
		field.Errors = errs[field.Name]
		bound.Fields[i] = field
	}
	bound.NonFieldErrors = errs[""]
	return bound
}

// Field returns the named field and whether it exists.
func (f Form) Field(name string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FormField{}, false
}

// ArticleForm is the blank create/edit form for an article.
func ArticleForm() Form {
	return Form{Fields: []FormField{
		{Name: "title", Label: "Title", Type: "text", Required: true, MaxLength: MaxTitleLength},
		{Name: "body", Label: "Body", Type: "textarea", Required: true},
	}}
}

// CommentForm is the blank comment submission form.
func CommentForm() Form {
	return Form{Fields: []FormField{
		{Name: "comment", Label: "Comment", Type: "text", Required: true, MaxLength: MaxCommentLength},
	}}
}

// SignupForm is the blank registration form.
func SignupForm(minAge int) Form {
	return Form{Fields: []FormField{
		{Name: "username", Label: "Username", Type: "text", Required: true, MaxLength: 30},
		{Name: "email", Label: "Email", Type: "email", Required: true, MaxLength: 254},
		{Name: "age", Label: "Age", Type: "number", Required: true, Min: minAge},
		{Name: "password1", Label: "Password", Type: "password", Required: true},
		{Name: "password2", Label: "Password confirmation", Type: "password", Required: true},
	}}
}

// LoginForm is the blank login form.
func LoginForm() Form {
	return Form{Fields: []FormField{
		{Name: "username", Label: "Username", Type: "text", Required: true},
		{Name: "password", Label: "Password", Type: "password", Required: true},
	}}
}
