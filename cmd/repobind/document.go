package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputFileName is the single fixed artifact written under the root.
const outputFileName = "repobind.html"

const tabWidth = 4

// documentStyle is a print stylesheet: every page-level block forces a page
// break, so the title page, the table of contents, and each file section
// start on a fresh page when the document is printed or converted.
const documentStyle = `body { margin: 0.5in; }
.page { page-break-after: always; }
.title-page h1 { font-size: 24pt; text-align: center; margin: 2in 0 20pt 0; }
.title-page p { font-size: 14pt; text-align: center; margin: 0 0 10pt 0; }
.toc h1 { font-size: 18pt; }
.toc-entry { font-family: Courier, monospace; font-size: 8pt; line-height: 10pt; }
.file-header { font-size: 10pt; font-weight: bold; background: #808080; color: #000000; padding: 5px; margin: 10pt 0 5pt 0; }
pre.code { font-family: Courier, monospace; font-size: 6pt; line-height: 7pt; white-space: pre-wrap; margin: 0; }
`

// escapeMarkup escapes the characters with markup meaning, and nothing else,
// so that content free of them survives byte-identical.
func escapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// documentBuilder assembles the export document section by section, in the
// order the sections appear in the output.
type documentBuilder struct {
	sb strings.Builder
}

func newDocumentBuilder(title string) *documentBuilder {
	b := &documentBuilder{}
	b.sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.sb.WriteString(fmt.Sprintf("<title>%s</title>\n", escapeMarkup(title)))
	b.sb.WriteString("<style>\n" + documentStyle + "</style>\n</head>\n<body>\n")
	return b
}

func (b *documentBuilder) writeTitlePage(title, subtitle string, fileCount int) {
	b.sb.WriteString("<div class=\"page title-page\">\n")
	b.sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", escapeMarkup(title)))
	b.sb.WriteString(fmt.Sprintf("<p>%s</p>\n", escapeMarkup(subtitle)))
	b.sb.WriteString(fmt.Sprintf("<p>Total Files: %d</p>\n", fileCount))
	b.sb.WriteString("</div>\n")
}

// writeTOC lists every file 1-indexed in the same order the content
// sections are appended.
func (b *documentBuilder) writeTOC(paths []string) {
	b.sb.WriteString("<div class=\"page toc\">\n<h1>Table of Contents</h1>\n")
	for i, rel := range paths {
		entry := fmt.Sprintf("%d. %s", i+1, rel)
		b.sb.WriteString(fmt.Sprintf("<div class=\"toc-entry\">%s</div>\n", escapeMarkup(entry)))
	}
	b.sb.WriteString("</div>\n")
}

func (b *documentBuilder) writeFileSection(relPath, content string) {
	content = escapeMarkup(content)
	content = expandTabs(content)

	b.sb.WriteString("<div class=\"page\">\n")
	b.sb.WriteString(fmt.Sprintf("<div class=\"file-header\">File: %s</div>\n", escapeMarkup(relPath)))
	b.sb.WriteString("<pre class=\"code\">" + content + "</pre>\n")
	b.sb.WriteString("</div>\n")
}

func (b *documentBuilder) finalize() string {
	return b.sb.String() + "</body>\n</html>\n"
}

// writeDocument writes the finished document to the fixed path under root,
// overwriting any previous export.
func writeDocument(root string, doc string) (string, error) {
	outPath := filepath.Join(root, outputFileName)
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write document %s: %w", outPath, err)
	}
	return outPath, nil
}
