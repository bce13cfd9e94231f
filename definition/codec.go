package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Parse decodes a document. Unknown keys are an error in both formats.
func Parse(data []byte, format Format) (*Definition, error) {
	switch format {
	case YAML:
		var d Definition
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if err == io.EOF {
				return &d, nil
			}
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		return &d, nil
	case JSON:
		// numbers stay json.Number so ids beyond 2^53 survive and fractions are refused
		var raw map[string]any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		return Decode(raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Decode maps an already-decoded generic document, e.g. one embedded in some larger JSON or YAML
// structure, onto a Definition. Input is weakly typed, so states may be written as strings and
// numeric symbols as numbers.
func Decode(raw map[string]any) (*Definition, error) {
	var d Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &d,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return &d, nil
}

// Load reads and parses the file at path, which must end in .yaml, .yml or .json.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d; YAML is indented by two spaces, JSON likewise.
func (d *Definition) Marshal(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes d onto w in the given format.
func (d *Definition) Write(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
