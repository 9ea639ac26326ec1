package render

import (
	"strings"
	"testing"

	"resumeforge/internal/model"
)

func TestTextDemoLayout(t *testing.T) {
	out := Text(model.DemoProject())

	for _, want := range []string{
		"Jake Ryan\n",
		"123-456-7890 | jake@su.edu | linkedin.com/in/jake | github.com/jake\n",
		"Education\n" + strings.Repeat("―", 60) + "\n",
		"Southwestern University    Georgetown, TX\n",
		"Bachelor of Arts in Computer Science, Minor in Business    Aug. 2018 -- May 2021\n",
		"Undergraduate Research Assistant    June 2020 -- Present\n",
		"Texas A&M University    College Station, TX\n",
		"  • Developed a REST API using FastAPI and PostgreSQL to store data from learning management systems\n",
		"Gitlytics | Python, Flask, React, PostgreSQL, Docker    June 2020 -- Present\n",
		"Languages: Java, Python, C/C++, SQL (Postgres), JavaScript, HTML/CSS, R\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in preview:\n%s", want, out)
		}
	}
}

func TestTextStyledRunsFlatten(t *testing.T) {
	p := model.DemoProject()
	out := Text(p)
	// The italic run joins its neighbors without markup.
	if !strings.Contains(out, "  • Explored methods to generate video game dungeons based off of The Legend of Zelda\n") {
		t.Fatalf("styled bullet not flattened:\n%s", out)
	}
}

func TestTextLinkKindNone(t *testing.T) {
	p := model.DemoProject()
	p.Header.GithubKind = "none"
	out := Text(p)
	if strings.Contains(out, "github.com/jake") {
		t.Fatalf("disabled slot rendered:\n%s", out)
	}
}

func TestTextOrderFollowsModel(t *testing.T) {
	p := model.DemoProject()
	p.Sections[0], p.Sections[3] = p.Sections[3], p.Sections[0]
	out := Text(p)
	if strings.Index(out, "Technical Skills\n") > strings.Index(out, "Education\n") {
		t.Fatalf("section order not reflected in preview")
	}
}

func TestTextEmptyProject(t *testing.T) {
	out := Text(model.DefaultProject())
	// Stock sections render their titles and rules even with no entries.
	for _, want := range []string{"Education", "Experience", "Projects", "Technical Skills"} {
		if !strings.Contains(out, want+"\n"+strings.Repeat("―", 60)+"\n") {
			t.Fatalf("missing section block %q:\n%s", want, out)
		}
	}
}
