package model

type SectionKind string

const (
	KindEducation  SectionKind = "education"
	KindExperience SectionKind = "experience"
	KindProjects   SectionKind = "projects"
	KindSkills     SectionKind = "skills"
	KindCustom     SectionKind = "custom"
)

// Field describes one editable plain-text field of an entry (or of the
// header). Key is both the JSON key and the command target.
type Field struct {
	Key   string
	Label string
}

// Kinds lists the section kinds offered when adding a section.
func Kinds() []SectionKind {
	return []SectionKind{KindEducation, KindExperience, KindProjects, KindSkills, KindCustom}
}

func (k SectionKind) Valid() bool {
	switch k {
	case KindEducation, KindExperience, KindProjects, KindSkills, KindCustom:
		return true
	}
	return false
}

// Fields returns the plain entry fields for this kind, in form order.
func (k SectionKind) Fields() []Field {
	switch k {
	case KindEducation:
		return []Field{
			{Key: "school", Label: "School"},
			{Key: "location", Label: "Location"},
			{Key: "degree", Label: "Degree"},
			{Key: "dates", Label: "Dates"},
		}
	case KindExperience:
		return []Field{
			{Key: "role", Label: "Role"},
			{Key: "dates", Label: "Dates"},
			{Key: "org", Label: "Organization"},
			{Key: "location", Label: "Location"},
		}
	case KindProjects:
		return []Field{
			{Key: "title", Label: "Title"},
			{Key: "stack", Label: "Stack"},
			{Key: "dates", Label: "Dates"},
		}
	case KindSkills:
		return []Field{
			{Key: "label", Label: "Label"},
		}
	case KindCustom:
		return []Field{
			{Key: "title", Label: "Title"},
		}
	}
	return nil
}

// HasBullets reports whether entries of this kind carry a bullet list.
func (k SectionKind) HasBullets() bool {
	return k == KindExperience || k == KindProjects
}

// HasBody reports whether entries of this kind carry a rich body line.
func (k SectionKind) HasBody() bool {
	return k == KindEducation || k == KindSkills || k == KindCustom
}

// BodyLabel names the rich body field in editors ("Value" for skills rows).
func (k SectionKind) BodyLabel() string {
	if k == KindSkills {
		return "Value"
	}
	return "Body"
}

// EntrySummary is the one-line list label for an entry of this kind.
func (k SectionKind) EntrySummary(e Entry) string {
	switch k {
	case KindEducation:
		if e.School != "" {
			return e.School
		}
		return e.Degree
	case KindExperience:
		if e.Role != "" {
			return e.Role
		}
		return e.Org
	case KindProjects:
		return e.Title
	case KindSkills:
		return e.Label
	}
	return e.Title
}

// HeaderFields returns the header's plain fields in form order.
func HeaderFields() []Field {
	return []Field{
		{Key: "name", Label: "Name"},
		{Key: "phone", Label: "Phone"},
		{Key: "email", Label: "Email"},
		{Key: "linkedin_kind", Label: "Link 1 kind"},
		{Key: "linkedin", Label: "Link 1 URL"},
		{Key: "linkedin_display", Label: "Link 1 display"},
		{Key: "github_kind", Label: "Link 2 kind"},
		{Key: "github", Label: "Link 2 URL"},
		{Key: "github_display", Label: "Link 2 display"},
	}
}

// HeaderField reads a header field by key.
func (h Header) HeaderField(key string) string {
	switch key {
	case "name":
		return h.Name
	case "phone":
		return h.Phone
	case "email":
		return h.Email
	case "linkedin":
		return h.Linkedin
	case "linkedin_display":
		return h.LinkedinDisplay
	case "linkedin_kind":
		return h.LinkedinKind
	case "github":
		return h.Github
	case "github_display":
		return h.GithubDisplay
	case "github_kind":
		return h.GithubKind
	}
	return ""
}

// SetHeaderField writes a header field by key. Unknown keys are ignored.
func (h *Header) SetHeaderField(key, value string) {
	switch key {
	case "name":
		h.Name = value
	case "phone":
		h.Phone = value
	case "email":
		h.Email = value
	case "linkedin":
		h.Linkedin = value
	case "linkedin_display":
		h.LinkedinDisplay = value
	case "linkedin_kind":
		h.LinkedinKind = value
	case "github":
		h.Github = value
	case "github_display":
		h.GithubDisplay = value
	case "github_kind":
		h.GithubKind = value
	}
}

// Field reads a plain entry field by key.
func (e Entry) Field(key string) string {
	switch key {
	case "school":
		return e.School
	case "location":
		return e.Location
	case "degree":
		return e.Degree
	case "dates":
		return e.Dates
	case "role":
		return e.Role
	case "org":
		return e.Org
	case "title":
		return e.Title
	case "stack":
		return e.Stack
	case "label":
		return e.Label
	}
	return ""
}

// SetField writes a plain entry field by key. Unknown keys are ignored.
func (e *Entry) SetField(key, value string) {
	switch key {
	case "school":
		e.School = value
	case "location":
		e.Location = value
	case "degree":
		e.Degree = value
	case "dates":
		e.Dates = value
	case "role":
		e.Role = value
	case "org":
		e.Org = value
	case "title":
		e.Title = value
	case "stack":
		e.Stack = value
	case "label":
		e.Label = value
	}
}

// LinkKindOptions lists the platform labels offered for a link slot.
// Slot 1 is the social slot, slot 2 the code/portfolio slot.
func LinkKindOptions(slot int) []string {
	if slot == 2 {
		return []string{"None", "Custom", "GitHub", "Portfolio", "Webpage"}
	}
	return []string{
		"None", "Custom", "LinkedIn", "Facebook", "Instagram", "TikTok",
		"Snapchat", "X (Twitter)", "Slack", "Discord", "Indeed", "Monster",
		"Glassdoor", "Handshake", "Wellfound", "Stack Overflow",
	}
}
