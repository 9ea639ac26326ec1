package model

// DefaultProject returns the empty starting resume: a blank header and the
// four stock sections. The stock section ids are stable names so reorderings
// of a fresh project stay readable in the file.
func DefaultProject() *Project {
	return &Project{
		Header: Header{
			LinkedinKind: "LinkedIn",
			GithubKind:   "GitHub",
		},
		Sections: []Section{
			{ID: "education", Title: "Education", Kind: KindEducation, Entries: []Entry{}},
			{ID: "experience", Title: "Experience", Kind: KindExperience, Entries: []Entry{}},
			{ID: "projects", Title: "Projects", Kind: KindProjects, Entries: []Entry{}},
			{ID: "technical_skills", Title: "Technical Skills", Kind: KindSkills, Entries: []Entry{}},
		},
	}
}
