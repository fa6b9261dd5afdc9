package fzf

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"
)

const previewByteLimit = 4096

// Finder narrows a result list down to one file with an interactive fuzzy
// picker and a content preview pane.
type Finder struct {
	Header string
	files  []string
}

func NewFinder(header string) *Finder {
	return &Finder{Header: header}
}

// Select runs the picker over the provided paths and returns the chosen
// one. The query, when non-empty, pre-fills the picker's filter line.
func (f *Finder) Select(paths []string, query string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no files to select from")
	}

	f.files = paths

	idx, err := f.selectFile(query)
	if err != nil {
		f.handleSelectError(err)
		return "", err
	}

	if idx == -1 {
		return "", fmt.Errorf("no file selected")
	}

	return f.files[idx], nil
}

func (f *Finder) selectFile(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	return fuzzyfinder.Find(f.files, func(i int) string {
		return f.files[i]
	}, options...)
}

// renderPreview shows the file under the cursor: markdown gets rendered,
// everything else is shown as a plain excerpt.
func (f *Finder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	path := f.files[i]
	content, err := os.ReadFile(path)
	if err != nil {
		return "Error reading file"
	}

	if len(content) > previewByteLimit {
		content = content[:previewByteLimit]
	}

	if isMarkdown(path) {
		return renderMarkdown(content)
	}

	return plainExcerpt(content)
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func renderMarkdown(content []byte) string {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	rendered, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return rendered
}

func plainExcerpt(content []byte) string {
	if !strings.Contains(http.DetectContentType(content), "text") {
		return "(binary file)"
	}
	return string(content)
}

// handleSelectError prints appropriate messages for picker errors
func (f *Finder) handleSelectError(err error) {
	if err == fuzzyfinder.ErrAbort {
		fmt.Println("No file selected")
	} else {
		fmt.Println("Error selecting file:", err)
	}
}
