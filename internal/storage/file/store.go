package file

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tiwariParth/go-records-cli/internal/storage"
)

const filePerm = 0644

// Write marshals doc as an indented UTF-8 XML document with a declaration
// header and writes it to path, replacing any existing file.
func Write(path string, doc any) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal data: %w", storage.ErrWrite, err)
	}

	data := make([]byte, 0, len(xml.Header)+len(body)+1)
	data = append(data, xml.Header...)
	data = append(data, body...)
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrWrite, err)
	}
	return nil
}

// Read parses the XML document at path into doc. A missing file yields
// storage.ErrNotFound; markup that does not decode into doc yields
// storage.ErrParse, as does anything but whitespace, comments or processing
// instructions after the root element.
func Read(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", storage.ErrNotFound, err)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrParse, path, err)
	}
	if err := expectEOF(dec); err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrParse, path, err)
	}
	return nil
}

// expectEOF consumes the tokens after the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("text after root element at offset %d", dec.InputOffset())
			}
		default:
			return fmt.Errorf("content after root element at offset %d", dec.InputOffset())
		}
	}
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
