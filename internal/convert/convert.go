package convert

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"

	"resume-builder/internal/shared/telemetry"
)

// ErrConversionFailed indicates the requested format conversion is not
// possible for the given content.
var ErrConversionFailed = errors.New("conversion failed")

// Supported artifact formats.
const (
	FormatPDF  = "pdf"
	FormatDocx = "docx"
)

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/pdf"
	}
}

// Convert transforms artifact bytes between formats. Same-format requests
// return the content unchanged. PDF to DOCX currently validates the source
// and passes the bytes through until a real transcoder lands.
func Convert(content []byte, from, to string) ([]byte, error) {
	if from == to {
		return content, nil
	}

	if from == FormatPDF && to == FormatDocx {
		if _, err := pdf.NewReader(bytes.NewReader(content), int64(len(content))); err != nil {
			return nil, fmt.Errorf("%w: source is not a readable PDF: %v", ErrConversionFailed, err)
		}
		telemetry.Warn("convert.passthrough", map[string]any{
			"from": from,
			"to":   to,
			"note": "docx transcoding not implemented, returning source bytes",
		})
		return content, nil
	}

	return nil, fmt.Errorf("%w: unsupported conversion %s to %s", ErrConversionFailed, from, to)
}
