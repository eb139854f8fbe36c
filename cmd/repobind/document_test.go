package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEscapeMarkup(t *testing.T) {
	cases := map[string]string{
		"x<y":          "x&lt;y",
		"a>b":          "a&gt;b",
		"a&b":          "a&amp;b",
		"&lt;":         "&amp;lt;",
		"<div>&</div>": "&lt;div&gt;&amp;&lt;/div&gt;",
		"hello":        "hello",
	}
	for in, want := range cases {
		if got := escapeMarkup(in); got != want {
			t.Fatalf("escapeMarkup(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	if got := expandTabs("a\tb\t\tc"); got != "a    b        c" {
		t.Fatalf("expandTabs = %q", got)
	}
}

func buildTestDocument(paths []string, contents map[string]string) string {
	b := newDocumentBuilder("Repo")
	b.writeTitlePage("Repo", defaultSubtitle, len(paths))
	b.writeTOC(paths)
	for _, rel := range paths {
		b.writeFileSection(rel, contents[rel])
	}
	return b.finalize()
}

func TestDocumentStructure(t *testing.T) {
	paths := []string{"a.py", "b.md"}
	doc := buildTestDocument(paths, map[string]string{
		"a.py": "x<y",
		"b.md": "hello",
	})

	if !strings.Contains(doc, "Total Files: 2") {
		t.Fatalf("missing file count in document")
	}
	if !strings.Contains(doc, "1. a.py") || !strings.Contains(doc, "2. b.md") {
		t.Fatalf("missing TOC entries in document")
	}
	if !strings.Contains(doc, "x&lt;y") {
		t.Fatalf("content was not escaped")
	}
	if strings.Contains(doc, "x<y") {
		t.Fatalf("unescaped content leaked into document")
	}
	if !strings.Contains(doc, "File: a.py") || !strings.Contains(doc, "File: b.md") {
		t.Fatalf("missing file headers in document")
	}
}

func TestDocumentOrderingConsistency(t *testing.T) {
	paths := []string{"a.py", "B.md", "c.txt"}
	doc := buildTestDocument(paths, map[string]string{
		"a.py": "1", "B.md": "2", "c.txt": "3",
	})

	tocA := strings.Index(doc, "1. a.py")
	tocB := strings.Index(doc, "2. B.md")
	tocC := strings.Index(doc, "3. c.txt")
	secA := strings.Index(doc, "File: a.py")
	secB := strings.Index(doc, "File: B.md")
	secC := strings.Index(doc, "File: c.txt")

	if tocA < 0 || tocB < 0 || tocC < 0 || secA < 0 || secB < 0 || secC < 0 {
		t.Fatalf("missing entries or sections in document")
	}
	if !(tocA < tocB && tocB < tocC) {
		t.Fatalf("TOC entries out of order")
	}
	if !(secA < secB && secB < secC) {
		t.Fatalf("content sections out of order")
	}
	if !(tocC < secA) {
		t.Fatalf("content sections should follow the full TOC")
	}
}

func TestDocumentRoundTripPlainContent(t *testing.T) {
	content := "package main\n\nfunc main() {}\n"
	doc := buildTestDocument([]string{"main.go"}, map[string]string{"main.go": content})
	if !strings.Contains(doc, "<pre class=\"code\">"+content+"</pre>") {
		t.Fatalf("plain content should appear byte-identical in the document")
	}
}

func TestDocumentEmptyTree(t *testing.T) {
	doc := buildTestDocument(nil, nil)
	if !strings.Contains(doc, "Total Files: 0") {
		t.Fatalf("missing zero file count")
	}
	if !strings.Contains(doc, "Table of Contents") {
		t.Fatalf("missing TOC heading")
	}
	if strings.Contains(doc, "toc-entry") {
		t.Fatalf("empty tree should produce no TOC entries")
	}
	if strings.Contains(doc, "file-header") {
		t.Fatalf("empty tree should produce no file sections")
	}
}

func TestDocumentIdempotent(t *testing.T) {
	paths := []string{"a.py", "b.md"}
	contents := map[string]string{"a.py": "x", "b.md": "y"}
	first := buildTestDocument(paths, contents)
	second := buildTestDocument(paths, contents)
	if first != second {
		t.Fatalf("identical inputs should produce identical documents")
	}
}

func TestWriteDocumentOverwrites(t *testing.T) {
	root := t.TempDir()
	if _, err := writeDocument(root, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outPath, err := writeDocument(root, "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outPath != filepath.Join(root, outputFileName) {
		t.Fatalf("unexpected output path %q", outPath)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}
