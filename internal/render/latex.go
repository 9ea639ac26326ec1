package render

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"resumeforge/internal/model"
)

// The output follows Jake Gutierrez's resume template
// (https://github.com/sb2nov/resume derivative, MIT). ulem is added for
// strikethrough runs; normalem keeps \emph italic.
const latexPreamble = `%-------------------------
% Resume in Latex
% Author : Jake Gutierrez
% Based off of: https://github.com/sb2nov/resume
% License : MIT
%------------------------

\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage[usenames,dvipsnames]{xcolor}
\usepackage{verbatim}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}
\usepackage[english]{babel}
\usepackage{tabularx}
\usepackage[normalem]{ulem}
\input{glyphtounicode}


%----------FONT OPTIONS----------
% sans-serif
% \usepackage[sfdefault]{FiraSans}
% \usepackage[sfdefault]{roboto}
% \usepackage[sfdefault]{noto-sans}
% \usepackage[default]{sourcesanspro}

% serif
% \usepackage{CormorantGaramond}
% \usepackage{charter}


\pagestyle{fancy}
\fancyhf{} % clear all header and footer fields
\fancyfoot{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

% Adjust margins
\addtolength{\oddsidemargin}{-0.5in}
\addtolength{\evensidemargin}{-0.5in}
\addtolength{\textwidth}{1in}
\addtolength{\topmargin}{-.5in}
\addtolength{\textheight}{1.0in}

\urlstyle{same}

\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

% Sections formatting
\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]

% Ensure that generate pdf is machine readable/ATS parsable
\pdfgentounicode=1

%-------------------------
% Custom commands
\newcommand{\resumeItem}[1]{
  \item\small{
    {#1 \vspace{-2pt}}
  }
}

\newcommand{\resumeSubheading}[4]{
  \vspace{-2pt}\item
    \begin{tabular*}{0.97\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & #2 \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeSubSubheading}[2]{
    \item
    \begin{tabular*}{0.97\textwidth}{l@{\extracolsep{\fill}}r}
      \textit{\small#1} & \textit{\small #2} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeProjectHeading}[2]{
    \item
    \begin{tabular*}{0.97\textwidth}{l@{\extracolsep{\fill}}r}
      \small#1 & #2 \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeSubItem}[1]{\resumeItem{#1}\vspace{-4pt}}

\renewcommand\labelitemii{$\vcenter{\hbox{\tiny$\bullet$}}$}

\newcommand{\resumeSubHeadingListStart}{\begin{itemize}[leftmargin=0.15in, label={}]}
\newcommand{\resumeSubHeadingListEnd}{\end{itemize}}
\newcommand{\resumeItemListStart}{\begin{itemize}}
\newcommand{\resumeItemListEnd}{\end{itemize}\vspace{-5pt}}

%-------------------------------------------
%%%%%%  RESUME STARTS HERE  %%%%%%%%%%%%%%%%%%%%%%%%%%%%


\begin{document}
`

const latexEnd = `
%-------------------------------------------
\end{document}
`

const latexDefaultMargins = `\addtolength{\oddsidemargin}{-0.5in}
\addtolength{\evensidemargin}{-0.5in}
\addtolength{\textwidth}{1in}
\addtolength{\topmargin}{-.5in}
\addtolength{\textheight}{1.0in}`

// preambleFor patches the configured knobs into the stock preamble. With
// default options the template passes through untouched.
func preambleFor(opt Options) string {
	s := latexPreamble
	if paper, pt := texPaper(opt.Paper), texDocPt(opt.BaseSizePt); paper != "letterpaper" || pt != 11 {
		s = strings.Replace(s,
			`\documentclass[letterpaper,11pt]{article}`,
			fmt.Sprintf(`\documentclass[%s,%dpt]{article}`, paper, pt), 1)
	}
	if opt.MarginPt > 0 && opt.MarginPt != 36 {
		// The template starts from fullpage's 1in margins.
		off := opt.MarginPt/72 - 1
		s = strings.Replace(s, latexDefaultMargins, fmt.Sprintf(
			"\\addtolength{\\oddsidemargin}{%gin}\n"+
				"\\addtolength{\\evensidemargin}{%gin}\n"+
				"\\addtolength{\\textwidth}{%gin}\n"+
				"\\addtolength{\\topmargin}{%gin}\n"+
				"\\addtolength{\\textheight}{%gin}",
			off, off, -2*off, off, -2*off), 1)
	}
	if r, g, b, ok := hexToRGB(opt.RuleColor); ok && (r != 0 || g != 0 || b != 0) {
		s = strings.Replace(s, `[\color{black}\titlerule`,
			fmt.Sprintf(`[\color[rgb]{%.3f,%.3f,%.3f}\titlerule`, r, g, b), 1)
	}
	return s
}

func texPaper(paper string) string {
	if strings.EqualFold(strings.TrimSpace(paper), "a4") {
		return "a4paper"
	}
	return "letterpaper"
}

// texDocPt picks the nearest size the article class offers.
func texDocPt(base float64) int {
	switch {
	case base > 0 && base <= 10:
		return 10
	case base >= 12:
		return 12
	default:
		return 11
	}
}

var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
}

// Escape replaces LaTeX special characters in user text.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var hexRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

func hexToRGB(hex string) (r, g, b float64, ok bool) {
	m := hexRe.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(v >> 16 & 0xff) / 255, float64(v >> 8 & 0xff) / 255, float64(v & 0xff) / 255, true
}

// RunsToLaTeX maps styled runs to LaTeX commands, innermost style first.
// Runs with empty text are skipped; invalid colors are ignored.
func RunsToLaTeX(runs []model.Run) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		t := Escape(run.Text)
		if run.Italic {
			t = `\emph{` + t + `}`
		}
		if run.Underline {
			t = `\underline{` + t + `}`
		}
		if run.Strike {
			t = `\sout{` + t + `}`
		}
		if run.Bold {
			t = `\textbf{` + t + `}`
		}
		if r, g, bl, ok := hexToRGB(run.Color); ok {
			t = fmt.Sprintf(`\textcolor[rgb]{%.3f,%.3f,%.3f}{%s}`, r, g, bl, t)
		}
		if r, g, bl, ok := hexToRGB(run.Highlight); ok {
			t = fmt.Sprintf(`\colorbox[rgb]{%.3f,%.3f,%.3f}{%s}`, r, g, bl, t)
		}
		b.WriteString(t)
	}
	return b.String()
}

func sectionTitleLaTeX(s *model.Section) string {
	if len(s.TitleRuns) > 0 {
		return RunsToLaTeX(s.TitleRuns)
	}
	return Escape(s.Title)
}

// LaTeX renders the whole project as a .tex source string.
func LaTeX(p *model.Project, opt Options) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	b.WriteString(preambleFor(opt))
	line("")

	contact := make([]string, 0, 4)
	for _, item := range ContactItems(&p.Header) {
		if item.Href == "" {
			contact = append(contact, Escape(item.Text))
		} else {
			contact = append(contact, fmt.Sprintf(`\href{%s}{\underline{%s}}`, Escape(item.Href), Escape(item.Text)))
		}
	}
	contactLine := `    \small`
	if len(contact) > 0 {
		contactLine += " " + strings.Join(contact, ` $|$ `)
	}

	line(`\begin{center}`)
	line(`    \textbf{\Huge \scshape ` + Escape(p.Header.Name) + `} \\ \vspace{1pt}`)
	line(contactLine)
	line(`\end{center}`)
	line("")

	for i := range p.Sections {
		sec := &p.Sections[i]
		line(`\section{` + sectionTitleLaTeX(sec) + `}`)

		switch sec.Kind {
		case model.KindEducation:
			line(`  \resumeSubHeadingListStart`)
			for j := range sec.Entries {
				e := &sec.Entries[j]
				line(`    \resumeSubheading`)
				line(`      {` + Escape(e.School) + `}{` + Escape(e.Location) + `}`)
				line(`      {` + Escape(e.Degree) + `}{` + Escape(e.Dates) + `}`)
				if len(e.Body) > 0 {
					line(`      \resumeItemListStart`)
					line(`        \resumeItem{` + RunsToLaTeX(e.Body) + `}`)
					line(`      \resumeItemListEnd`)
				}
			}
			line(`  \resumeSubHeadingListEnd`)
			line("")

		case model.KindExperience:
			line(`  \resumeSubHeadingListStart`)
			for j := range sec.Entries {
				e := &sec.Entries[j]
				line(`    \resumeSubheading`)
				line(`      {` + Escape(e.Role) + `}{` + Escape(e.Dates) + `}`)
				line(`      {` + Escape(e.Org) + `}{` + Escape(e.Location) + `}`)
				if len(e.Bullets) > 0 {
					line(`      \resumeItemListStart`)
					for _, bl := range e.Bullets {
						line(`        \resumeItem{` + RunsToLaTeX(bl) + `}`)
					}
					line(`      \resumeItemListEnd`)
					line("")
				}
			}
			line(`  \resumeSubHeadingListEnd`)
			line("")

		case model.KindProjects:
			line(`  \resumeSubHeadingListStart`)
			for j := range sec.Entries {
				e := &sec.Entries[j]
				left := `\textbf{` + Escape(e.Title) + `} $|$ \emph{` + Escape(e.Stack) + `}`
				line(`      \resumeProjectHeading`)
				line(`          {` + left + `}{` + Escape(e.Dates) + `}`)
				if len(e.Bullets) > 0 {
					line(`          \resumeItemListStart`)
					for _, bl := range e.Bullets {
						line(`            \resumeItem{` + RunsToLaTeX(bl) + `}`)
					}
					line(`          \resumeItemListEnd`)
				}
			}
			line(`    \resumeSubHeadingListEnd`)
			line("")

		case model.KindSkills:
			line(` \begin{itemize}[leftmargin=0.15in, label={}]`)
			line(`    \small{\item{`)
			for j := range sec.Entries {
				e := &sec.Entries[j]
				skillLine := `     \textbf{` + Escape(e.Label) + `}{: ` + RunsToLaTeX(e.Body) + `}`
				if j != len(sec.Entries)-1 {
					skillLine += ` \\\\`
				}
				line(skillLine)
			}
			line(`    }}`)
			line(` \end{itemize}`)
			line("")

		default:
			for j := range sec.Entries {
				e := &sec.Entries[j]
				if t := Escape(e.Title); t != "" {
					line(`\textbf{` + t + `}\\`)
				}
				if len(e.Body) > 0 {
					line(RunsToLaTeX(e.Body) + `\\`)
				}
				line("")
			}
		}
	}

	b.WriteString(latexEnd)
	return b.String()
}

// WriteLaTeX renders the project and writes the .tex file.
func WriteLaTeX(p *model.Project, path string, opt Options) error {
	if err := os.WriteFile(path, []byte(LaTeX(p, opt)), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
