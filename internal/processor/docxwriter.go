package processor

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// summaryToDocx writes a styled docx with a title, a metadata line and one
// paragraph per blank-line separated block of the summary.
func summaryToDocx(title, meta, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, false, 16)
	addStyledRun(doc.AddParagraph(""), meta, false, true, 11)

	for _, block := range strings.Split(summary, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block == "" {
			continue
		}
		addStyledRun(doc.AddParagraph(""), block, false, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold, italic bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
	if italic {
		run.Italic(true)
	}
}
