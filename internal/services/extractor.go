package services

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// MediaType identifies a supported resume document format.
type MediaType string

const (
	MediaTypePDF  MediaType = "pdf"
	MediaTypeWord MediaType = "word"
)

// DetectMediaType classifies an upload from its declared content type and
// filename. It returns an UnsupportedType validation error when neither
// signal matches a supported document format.
func DetectMediaType(contentType, filename string) (MediaType, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/pdf":
		return MediaTypePDF, nil
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return MediaTypeWord, nil
	}

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return MediaTypePDF, nil
	case strings.HasSuffix(name, ".doc"), strings.HasSuffix(name, ".docx"):
		return MediaTypeWord, nil
	}

	return "", NewUnsupportedTypeError(fmt.Sprintf("got %q (%s)", contentType, filename))
}

// TextExtractor converts raw document bytes into plain text.
type TextExtractor interface {
	ExtractText(content []byte, mediaType MediaType) (string, error)
}

type textExtractor struct {
	logger *zap.Logger
}

func NewTextExtractor(logger *zap.Logger) TextExtractor {
	return &textExtractor{logger: logger}
}

func (t *textExtractor) ExtractText(content []byte, mediaType MediaType) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaType {
	case MediaTypePDF:
		text, err = t.extractPDF(content)
	case MediaTypeWord:
		text, err = t.extractWord(content)
	default:
		return "", NewUnsupportedFormatError(string(mediaType))
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", NewEmptyDocumentError()
	}

	t.logger.Debug("extracted text from document",
		zap.String("media_type", string(mediaType)),
		zap.Int("bytes", len(content)),
		zap.Int("chars", len(text)))

	return text, nil
}

func (t *textExtractor) extractPDF(content []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = NewCorruptDocumentError(fmt.Errorf("pdf decode panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", NewCorruptDocumentError(err)
	}

	var builder strings.Builder
	totalPages := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			t.logger.Warn("skipping unreadable pdf page",
				zap.Int("page", pageIndex),
				zap.Error(err))
			continue
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func (t *textExtractor) extractWord(content []byte) (string, error) {
	mimeType := "application/msword"
	// docx files are zip archives.
	if bytes.HasPrefix(content, []byte("PK")) {
		mimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	res, err := docconv.Convert(bytes.NewReader(content), mimeType, true)
	if err != nil {
		return "", NewCorruptDocumentError(err)
	}

	return res.Body, nil
}
