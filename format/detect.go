// Package format provides input file format detection for the imposa
// library.
package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	return Unknown
}

// DetectFile determines the format of the file at path, requiring both
// the extension and the magic bytes to agree. A file whose extension
// claims PDF but whose content does not start with %PDF is Unknown.
func DetectFile(path string) (Format, error) {
	if Detect(path) != PDF {
		return Unknown, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("detect format of %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	// ReadFull keeps a short read from misclassifying a valid PDF; a
	// file shorter than the header cannot be one anyway.
	header := make([]byte, 4)
	if _, err := io.ReadFull(f, header); err != nil {
		return Unknown, nil
	}
	return DetectFromMagic(header), nil
}
