package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/radiofrance/robotkw/pkg/junit"
	"github.com/radiofrance/robotkw/pkg/keyword"
)

const jsonIndent = "  "

// Write serializes the record into the destination file, creating parent directories as needed.
// The record is encoded before the destination is opened, so an encoding failure leaves an
// existing document untouched. The file is closed on every path; a close error is reported
// when writing itself succeeded.
func Write(record keyword.Record, destination string, format Format) (err error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, record, format); err != nil {
		return fmt.Errorf("unable to encode %q: %w", destination, err)
	}

	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("unable to create directory %q: %w", dir, err)
		}
	}

	writer, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", destination, err)
	}

	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(writer)

	if _, err := buf.WriteTo(writer); err != nil {
		return fmt.Errorf("unable to write %q: %w", destination, err)
	}

	return nil
}

// Encode serializes the record into w.
func Encode(w io.Writer, record keyword.Record, format Format) error {
	switch format {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)
		return encoder.Encode(record)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(len(jsonIndent))
		if err := encoder.Encode(record); err != nil {
			return err
		}
		return encoder.Close()
	case FormatJUnit:
		return junit.Encode(w, junit.FromKeywords(record))
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Read deserializes a document previously produced by Write.
func Read(source string, format Format) (keyword.Record, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return keyword.Record{}, err
	}

	return Decode(data, format)
}

// Decode deserializes a raw document into a record.
func Decode(data []byte, format Format) (keyword.Record, error) {
	var record keyword.Record

	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &record); err != nil {
			return keyword.Record{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &record); err != nil {
			return keyword.Record{}, err
		}
	default:
		return keyword.Record{}, fmt.Errorf("unsupported format %q", format)
	}

	return record, nil
}
