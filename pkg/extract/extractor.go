package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is one extracted unit of text. Non-paginated formats produce a
// single page with Number nil.
type Page struct {
	Number  *int
	Content string
}

// SupportedExtension reports whether the ingestion path accepts the file.
func SupportedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".doc", ".md", ".markdown", ".txt":
		return true
	}
	return false
}

// Extract pulls plain text from a file on disk, dispatching on extension.
func Extract(path string) ([]Page, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".doc":
		return extractDOCX(path)
	case ".md", ".markdown", ".txt":
		return extractPlain(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func extractPDF(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []Page
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// A single broken page should not sink the document
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		number := i
		pages = append(pages, Page{Number: &number, Content: text})
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdf contains no extractable text: %s", filepath.Base(path))
	}
	return pages, nil
}

// docx is a zip archive; the body lives in word/document.xml. Text sits in
// w:t elements and paragraphs end at w:p boundaries.
func extractDOCX(path string) ([]Page, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()

	var docXML []byte
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return nil, err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, err
			}
			break
		}
	}
	if docXML == nil {
		return nil, fmt.Errorf("docx missing word/document.xml: %s", filepath.Base(path))
	}

	var sb strings.Builder
	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse docx xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inText = false
			}
			if el.Name.Local == "p" {
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return nil, fmt.Errorf("docx contains no text: %s", filepath.Base(path))
	}
	return []Page{{Content: content}}, nil
}

func extractPlain(path string) ([]Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(string(raw))
	if content == "" {
		return nil, fmt.Errorf("file is empty: %s", filepath.Base(path))
	}
	return []Page{{Content: content}}, nil
}
