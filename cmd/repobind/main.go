package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tokenCount bool
var tokenModel string

var rootCmd = &cobra.Command{
	Use:   "repobind [directory]",
	Short: "Repobind exports a repository as a single paginated document",
	Long: `Repobind walks a directory tree, filters files by extension and
filename, and binds their contents into one paginated HTML document with a
title page and a table of contents. The document is written to a fixed path
under the root; any previous export is overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return run(dir)
	},
}

func run(dir string) error {
	meta, err := loadDocumentMeta(dir)
	if err != nil {
		return err
	}

	fmt.Println("Collecting files from repository...")
	selector := NewSelector(defaultSelectorConfig())
	paths, err := selector.Select(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d files to include\n", len(paths))

	builder := newDocumentBuilder(meta.title)
	builder.writeTitlePage(meta.title, meta.subtitle, len(paths))
	builder.writeTOC(paths)

	for i, rel := range paths {
		fmt.Printf("Processing (%d/%d): %s\n", i+1, len(paths), rel)
		content, err := readFileText(filepath.Join(dir, rel))
		if err != nil {
			return err
		}
		builder.writeFileSection(rel, content)
	}

	fmt.Println("Building document...")
	doc := builder.finalize()
	outPath, err := writeDocument(dir, doc)
	if err != nil {
		return err
	}
	color.Green("Export created successfully: %s", outPath)

	if tokenCount {
		report, err := buildTokenReport(doc, tokenModel)
		if err != nil {
			return err
		}
		fmt.Print(report)
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&tokenCount, "tcount", false, "Print the token count of the exported document")
	rootCmd.Flags().StringVar(&tokenModel, "tcount-model", "gpt-4o", "Model whose tokenizer is used with --tcount")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
