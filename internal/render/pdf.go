package render

import (
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"resumeforge/internal/model"
)

// Layout constants, in points. Column rows carry their dates/location on
// the right edge; bulleted lists hang inside the section indent.
const (
	pdfSectionIndent   = 10.8
	pdfBulletInset     = 10
	pdfBulletTextInset = 18
	pdfRightInset      = 6
)

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	family string

	pageW  float64
	margin float64

	ruleR, ruleG, ruleB int

	baseSize    float64
	baseLead    float64
	italicSize  float64
	italicLead  float64
	contactSize float64
	contactLead float64
	secSize     float64
	secLead     float64
	nameLead    float64
}

// WritePDF draws the project onto PDF pages directly; no external tools
// are involved.
func WritePDF(p *model.Project, path string, opt Options) error {
	pdf := fpdf.New("P", "pt", paperSize(opt.Paper), "")
	pdf.SetMargins(opt.MarginPt, opt.MarginPt, opt.MarginPt)
	pdf.SetAutoPageBreak(true, opt.MarginPt)
	if name := strings.TrimSpace(p.Header.Name); name != "" {
		pdf.SetTitle(name, true)
	}
	pdf.AddPage()

	ruleR, ruleG, ruleB, ok := hexToRGB255(opt.RuleColor)
	if !ok {
		ruleR, ruleG, ruleB = 0, 0, 0
	}

	pageW, _ := pdf.GetPageSize()
	w := &pdfWriter{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		family: fontFamily(opt.BaseFont),
		pageW:  pageW,
		margin: opt.MarginPt,

		ruleR: ruleR, ruleG: ruleG, ruleB: ruleB,

		baseSize:    opt.BaseSizePt,
		baseLead:    opt.BaseSizePt + 1.7,
		italicSize:  opt.BaseSizePt - 0.7,
		italicLead:  opt.BaseSizePt + 1,
		contactSize: opt.BaseSizePt - 1,
		contactLead: opt.BaseSizePt + 0.5,
		secSize:     opt.BaseSizePt + 0.5,
		secLead:     opt.BaseSizePt + 2.5,
		nameLead:    opt.NameSizePt + 2,
	}

	w.header(&p.Header, opt.NameSizePt)
	for i := range p.Sections {
		w.section(&p.Sections[i])
	}

	if err := pdf.Error(); err != nil {
		return errors.Wrap(err, "render pdf")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func (w *pdfWriter) header(h *model.Header, nameSize float64) {
	pdf := w.pdf

	if name := strings.TrimSpace(h.Name); name != "" {
		pdf.SetFont(w.family, "B", nameSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, w.nameLead, w.tr(name), "", 1, "C", false, 0, "")
		pdf.SetY(pdf.GetY() + 2)
	}

	items := ContactItems(h)
	if len(items) == 0 {
		pdf.SetY(pdf.GetY() + 10)
		return
	}

	sep := " | "
	pdf.SetFont(w.family, "", w.contactSize)
	total := pdf.GetStringWidth(w.tr(sep)) * float64(len(items)-1)
	for _, it := range items {
		total += pdf.GetStringWidth(w.tr(it.Text))
	}
	contentW := w.pageW - 2*w.margin
	x := w.margin
	if total < contentW {
		x += (contentW - total) / 2
	}

	y := pdf.GetY()
	pdf.SetXY(x, y)
	for i, it := range items {
		if i > 0 {
			pdf.SetFont(w.family, "", w.contactSize)
			pdf.Write(w.contactLead, w.tr(sep))
		}
		if it.Href == "" {
			pdf.SetFont(w.family, "", w.contactSize)
			pdf.Write(w.contactLead, w.tr(it.Text))
		} else {
			pdf.SetFont(w.family, "U", w.contactSize)
			pdf.WriteLinkString(w.contactLead, w.tr(it.Text), it.Href)
		}
	}
	pdf.SetY(y + w.contactLead + 10)
}

func (w *pdfWriter) section(s *model.Section) {
	pdf := w.pdf
	title := strings.TrimSpace(s.DisplayTitle())
	if title != "" {
		pdf.SetY(pdf.GetY() + 6)
		pdf.SetFont(w.family, "", w.secSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, w.secLead, w.tr(title), "", 1, "L", false, 0, "")
		pdf.SetY(pdf.GetY() + 1)
		pdf.SetLineWidth(1)
		pdf.SetDrawColor(w.ruleR, w.ruleG, w.ruleB)
		y := pdf.GetY()
		pdf.Line(w.margin, y, w.pageW-w.margin, y)
		pdf.SetY(y + 3)
	}

	indented := s.Kind != model.KindCustom && s.Kind.Valid()
	if indented {
		pdf.SetLeftMargin(w.margin + pdfSectionIndent)
		pdf.SetX(w.margin + pdfSectionIndent)
	}

	for i := range s.Entries {
		e := &s.Entries[i]
		switch s.Kind {
		case model.KindEducation:
			w.row(func() { w.writeStyled(e.School, "B", w.baseSize, w.baseLead) }, e.Location, false)
			w.row(func() { w.writeStyled(e.Degree, "I", w.italicSize, w.italicLead) }, e.Dates, true)
			if len(e.Body) > 0 {
				w.bullet(e.Body)
			}
			pdf.SetY(pdf.GetY() + 3)
		case model.KindExperience:
			w.row(func() { w.writeStyled(e.Role, "B", w.baseSize, w.baseLead) }, e.Dates, false)
			w.row(func() { w.writeStyled(e.Org, "I", w.italicSize, w.italicLead) }, e.Location, true)
			for _, b := range e.Bullets {
				w.bullet(b)
			}
			pdf.SetY(pdf.GetY() + 4)
		case model.KindProjects:
			w.row(func() {
				w.writeStyled(e.Title, "B", w.baseSize, w.baseLead)
				if e.Stack != "" {
					w.writeStyled(" | ", "", w.baseSize, w.baseLead)
					w.writeStyled(e.Stack, "I", w.baseSize, w.baseLead)
				}
			}, e.Dates, false)
			for _, b := range e.Bullets {
				w.bullet(b)
			}
			pdf.SetY(pdf.GetY() + 4)
		case model.KindSkills:
			w.skillLine(e)
		default:
			if t := strings.TrimSpace(e.Title); t != "" {
				pdf.SetFont(w.family, "B", w.baseSize)
				pdf.SetTextColor(0, 0, 0)
				pdf.CellFormat(0, w.baseLead, w.tr(t), "", 1, "L", false, 0, "")
			}
			if strings.TrimSpace(model.PlainText(e.Body)) != "" {
				w.runs(e.Body, w.baseSize, w.baseLead)
				pdf.Ln(w.baseLead)
			}
			pdf.SetY(pdf.GetY() + 4)
		}
	}

	if indented {
		pdf.SetLeftMargin(w.margin)
		pdf.SetX(w.margin)
	}
}

// row writes a two-column line: styled content on the left, a plain or
// italic value right-aligned at the page edge.
func (w *pdfWriter) row(left func(), right string, rightItalic bool) {
	pdf := w.pdf
	y := pdf.GetY()
	left()

	right = strings.TrimSpace(right)
	if right != "" {
		style, size := "", w.baseSize
		if rightItalic {
			style, size = "I", w.italicSize
		}
		pdf.SetFont(w.family, style, size)
		pdf.SetTextColor(0, 0, 0)
		rw := pdf.GetStringWidth(w.tr(right))
		pdf.SetXY(w.pageW-w.margin-rw-pdfRightInset, y)
		pdf.CellFormat(rw+pdfRightInset, w.baseLead, w.tr(right), "", 0, "R", false, 0, "")
	}
	pdf.SetY(y + w.baseLead)
}

func (w *pdfWriter) writeStyled(text, style string, size, lead float64) {
	if text == "" {
		return
	}
	w.pdf.SetFont(w.family, style, size)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Write(lead, w.tr(text))
}

func (w *pdfWriter) bullet(runs []model.Run) {
	pdf := w.pdf
	lm := w.margin + pdfSectionIndent

	pdf.SetY(pdf.GetY() + 1)
	pdf.SetX(lm + pdfBulletInset)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(pdfBulletTextInset-pdfBulletInset, w.baseLead, w.tr("•"), "", 0, "L", false, 0, "")

	// Wrapped lines continue at the text inset, not the bullet glyph.
	pdf.SetLeftMargin(lm + pdfBulletTextInset)
	w.runs(runs, w.baseSize, w.baseLead)
	pdf.SetLeftMargin(lm)
	pdf.Ln(w.baseLead)
}

func (w *pdfWriter) skillLine(e *model.Entry) {
	pdf := w.pdf
	label := strings.TrimSpace(e.Label)
	value := strings.TrimSpace(model.PlainText(e.Body))
	if label == "" && value == "" {
		return
	}
	if label != "" {
		pdf.SetFont(w.family, "B", w.baseSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.Write(w.baseLead, w.tr(label))
		suffix := ":"
		if value != "" {
			suffix = ": "
		}
		pdf.SetFont(w.family, "", w.baseSize)
		pdf.Write(w.baseLead, suffix)
	}
	if value != "" {
		w.runs(e.Body, w.baseSize, w.baseLead)
	}
	pdf.Ln(w.baseLead)
}

// runs writes styled runs in flow. Color and highlight map to text color
// and a fill behind the run; strikethrough has no core-font equivalent and
// falls back to plain text, as the exports always have.
func (w *pdfWriter) runs(runs []model.Run, size, lead float64) {
	pdf := w.pdf
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		style := ""
		if r.Bold {
			style += "B"
		}
		if r.Italic {
			style += "I"
		}
		if r.Underline {
			style += "U"
		}
		pdf.SetFont(w.family, style, size)

		if cr, cg, cb, ok := hexToRGB255(r.Color); ok {
			pdf.SetTextColor(cr, cg, cb)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}

		txt := w.tr(r.Text)
		if hr, hg, hb, ok := hexToRGB255(r.Highlight); ok {
			tw := pdf.GetStringWidth(txt)
			x, y := pdf.GetXY()
			// Only paint the box when the run fits the current line;
			// wrapped runs render unhighlighted rather than misaligned.
			if x+tw <= w.pageW-w.margin {
				pdf.SetFillColor(hr, hg, hb)
				pdf.Rect(x, y, tw, lead, "F")
			}
		}
		pdf.Write(lead, txt)
	}
	pdf.SetTextColor(0, 0, 0)
}

func hexToRGB255(hex string) (r, g, b int, ok bool) {
	fr, fg, fb, ok := hexToRGB(hex)
	if !ok {
		return 0, 0, 0, false
	}
	return int(fr*255 + 0.5), int(fg*255 + 0.5), int(fb*255 + 0.5), true
}
