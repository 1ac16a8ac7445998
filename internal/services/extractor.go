package services

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type DocumentExtractor interface {
	Extract(ctx context.Context, data []byte) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	MimeType  string
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// Extract decodes an uploaded resume held in memory. Undecodable input yields
// a DocumentParseError and input without any text an EmptyDocumentError.
func (d *documentExtractor) Extract(ctx context.Context, data []byte) (*DocumentContent, error) {
	mtype := mimetype.Detect(data)

	var (
		text      string
		pageCount int
		err       error
	)

	switch {
	case mtype.Is(mimePDF):
		text, pageCount, err = extractPDFText(ctx, data)
	case mtype.Is(mimeDOCX):
		text, err = extractDocxText(data)
		pageCount = 1
	default:
		err = fmt.Errorf("unsupported document type: %s", mtype.String())
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, NewInternalError("Request was cancelled.", ctxErr)
		}
		return nil, NewDocumentParseError(err)
	}

	text = CleanText(text)
	if text == "" {
		return nil, NewEmptyDocumentError()
	}

	return &DocumentContent{
		Text:      text,
		PageCount: pageCount,
		MimeType:  mtype.String(),
	}, nil
}

func extractPDFText(ctx context.Context, data []byte) (text string, totalPage int, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, totalPage = "", 0
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage = r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, the rest may still carry text
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), totalPage, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML into plain text, one paragraph per line.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// Helper function to clean and normalize text
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
