package model

// DemoProject returns the built-in sample resume (the Jake Ryan resume the
// LaTeX template ships with). Entry ids are generated so the demo behaves
// like any loaded project.
func DemoProject() *Project {
	p := &Project{
		Header: Header{
			Name:            "Jake Ryan",
			Phone:           "123-456-7890",
			Email:           "jake@su.edu",
			LinkedinKind:    "LinkedIn",
			Linkedin:        "https://linkedin.com/in/...",
			LinkedinDisplay: "linkedin.com/in/jake",
			GithubKind:      "GitHub",
			Github:          "https://github.com/...",
			GithubDisplay:   "github.com/jake",
		},
		Sections: []Section{
			{
				ID: "education", Title: "Education", Kind: KindEducation,
				Entries: []Entry{
					{
						School:   "Southwestern University",
						Location: "Georgetown, TX",
						Degree:   "Bachelor of Arts in Computer Science, Minor in Business",
						Dates:    "Aug. 2018 -- May 2021",
					},
					{
						School:   "Blinn College",
						Location: "Bryan, TX",
						Degree:   "Associate's in Liberal Arts",
						Dates:    "Aug. 2014 -- May 2018",
					},
				},
			},
			{
				ID: "experience", Title: "Experience", Kind: KindExperience,
				Entries: []Entry{
					{
						Role:     "Undergraduate Research Assistant",
						Dates:    "June 2020 -- Present",
						Org:      "Texas A&M University",
						Location: "College Station, TX",
						Bullets: []Bullet{
							{{Text: "Developed a REST API using FastAPI and PostgreSQL to store data from learning management systems"}},
							{{Text: "Developed a full-stack web application using Flask, React, PostgreSQL and Docker to analyze GitHub data"}},
							{{Text: "Explored ways to visualize GitHub collaboration in a classroom setting"}},
						},
					},
					{
						Role:     "Information Technology Support Specialist",
						Dates:    "Sep. 2018 -- Present",
						Org:      "Southwestern University",
						Location: "Georgetown, TX",
						Bullets: []Bullet{
							{{Text: "Communicate with managers to set up campus computers used on campus"}},
							{{Text: "Assess and troubleshoot computer problems brought by students, faculty and staff"}},
							{{Text: "Maintain upkeep of computers, classroom equipment, and 200 printers across campus"}},
						},
					},
					{
						Role:     "Artificial Intelligence Research Assistant",
						Dates:    "May 2019 -- July 2019",
						Org:      "Southwestern University",
						Location: "Georgetown, TX",
						Bullets: []Bullet{
							{
								{Text: "Explored methods to generate video game dungeons based off of "},
								{Text: "The Legend of Zelda", Italic: true},
							},
							{{Text: "Developed a game in Java to test the generated dungeons"}},
							{{Text: "Contributed 50K+ lines of code to an established codebase via Git"}},
							{{Text: "Conducted a human subject study to determine which video game dungeon generation technique is enjoyable"}},
							{{Text: "Wrote an 8-page paper and gave multiple presentations on-campus"}},
							{{Text: "Presented virtually to the World Conference on Computational Intelligence"}},
						},
					},
				},
			},
			{
				ID: "projects", Title: "Projects", Kind: KindProjects,
				Entries: []Entry{
					{
						Title: "Gitlytics",
						Stack: "Python, Flask, React, PostgreSQL, Docker",
						Dates: "June 2020 -- Present",
						Bullets: []Bullet{
							{{Text: "Developed a full-stack web application using with Flask serving a REST API with React as the frontend"}},
							{{Text: "Implemented GitHub OAuth to get data from user's repositories"}},
							{{Text: "Visualized GitHub data to show collaboration"}},
							{{Text: "Used Celery and Redis for asynchronous tasks"}},
						},
					},
					{
						Title: "Simple Paintball",
						Stack: "Spigot API, Java, Maven, TravisCI, Git",
						Dates: "May 2018 -- May 2020",
						Bullets: []Bullet{
							{{Text: "Developed a Minecraft server plugin to entertain kids during free time for a previous job"}},
							{{Text: "Published plugin to websites gaining 2K+ downloads and an average 4.5/5-star review"}},
							{{Text: "Implemented continuous delivery using TravisCI to build the plugin upon new a release"}},
							{{Text: "Collaborated with Minecraft server administrators to suggest features and get feedback about the plugin"}},
						},
					},
				},
			},
			{
				ID: "technical_skills", Title: "Technical Skills", Kind: KindSkills,
				Entries: []Entry{
					{
						Label: "Languages",
						Body:  []Run{{Text: "Java, Python, C/C++, SQL (Postgres), JavaScript, HTML/CSS, R"}},
					},
					{
						Label: "Frameworks",
						Body:  []Run{{Text: "React, Node.js, Flask, JUnit, WordPress, Material-UI, FastAPI"}},
					},
					{
						Label: "Developer Tools",
						Body:  []Run{{Text: "Git, Docker, TravisCI, Google Cloud Platform, VS Code, Visual Studio, PyCharm, IntelliJ, Eclipse"}},
					},
					{
						Label: "Libraries",
						Body:  []Run{{Text: "pandas, NumPy, Matplotlib"}},
					},
				},
			},
		},
	}
	for i := range p.Sections {
		sec := &p.Sections[i]
		for j := range sec.Entries {
			sec.Entries[j].ID = sec.NewEntryID()
		}
	}
	return p
}
