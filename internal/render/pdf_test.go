package render

import (
	"bytes"
	"compress/zlib"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumeforge/internal/model"
)

func TestWritePDFDemo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPDFName)
	if err := WritePDF(model.DemoProject(), path, DefaultOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(raw), "%PDF-") {
		t.Fatalf("output is not a PDF (starts %q)", raw[:16])
	}
	if len(raw) < 1024 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(raw))
	}
}

func TestWritePDFStyledRuns(t *testing.T) {
	p := &model.Project{
		Header: model.Header{Name: "Style Check"},
		Sections: []model.Section{{
			ID: "experience", Kind: model.KindExperience, Title: "Experience",
			Entries: []model.Entry{{
				ID:   "e1",
				Role: "Engineer", Org: "Acme", Dates: "2024", Location: "Remote",
				Bullets: []model.Bullet{{
					{Text: "plain "},
					{Text: "bold", Bold: true},
					{Text: " and "},
					{Text: "colored", Color: "#cc0000", Highlight: "#ffff00"},
				}},
			}},
		}},
	}
	path := filepath.Join(t.TempDir(), "styled.pdf")
	if err := WritePDF(p, path, DefaultOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("no output written: %v", err)
	}
}

func TestWritePDFA4(t *testing.T) {
	opt := DefaultOptions()
	opt.Paper = "a4"
	opt.BaseFont = "helvetica"
	path := filepath.Join(t.TempDir(), "a4.pdf")
	if err := WritePDF(model.DemoProject(), path, opt); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWritePDFBadPath(t *testing.T) {
	err := WritePDF(model.DemoProject(), filepath.Join(t.TempDir(), "missing", "nested", "out.pdf"), DefaultOptions())
	if err == nil {
		t.Fatalf("want error for unwritable path")
	}
}

// pdfText inflates every FlateDecode stream in a rendered PDF and returns
// the concatenated contents. Page streams hold the drawn text in draw
// order, so index comparisons on the result check layout order.
func pdfText(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	var out strings.Builder
	rest := raw
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		seg := rest[i+len("stream"):]
		seg = bytes.TrimPrefix(seg, []byte("\r\n"))
		seg = bytes.TrimPrefix(seg, []byte("\n"))
		j := bytes.Index(seg, []byte("endstream"))
		if j < 0 {
			break
		}
		if zr, err := zlib.NewReader(bytes.NewReader(seg[:j])); err == nil {
			if b, err := io.ReadAll(zr); err == nil {
				out.Write(b)
			}
			zr.Close()
		}
		rest = seg[j+len("endstream"):]
	}
	if out.Len() == 0 {
		t.Fatalf("no inflatable streams in %s", path)
	}
	return out.String()
}

func TestWritePDFSectionOrderFollowsModel(t *testing.T) {
	dir := t.TempDir()
	p := model.DemoProject()

	path := filepath.Join(dir, "a.pdf")
	if err := WritePDF(p, path, DefaultOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	text := pdfText(t, path)
	edu := strings.Index(text, "Education")
	exp := strings.Index(text, "Experience")
	if edu < 0 || exp < 0 || edu > exp {
		t.Fatalf("section order wrong: edu=%d exp=%d", edu, exp)
	}

	// Swap and re-render; the drawn order must follow.
	p.Sections[0], p.Sections[1] = p.Sections[1], p.Sections[0]
	path = filepath.Join(dir, "b.pdf")
	if err := WritePDF(p, path, DefaultOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	text = pdfText(t, path)
	edu = strings.Index(text, "Education")
	exp = strings.Index(text, "Experience")
	if edu < 0 || exp < 0 || exp > edu {
		t.Fatalf("section order after reorder wrong: edu=%d exp=%d", edu, exp)
	}
}
