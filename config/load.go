package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scroll-room/room"
)

var (
	// ErrUnknownFormat is returned for file extensions other than .toml, .yaml, .yml
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrInvalid wraps schema violations
	ErrInvalid = errors.New("config: invalid document")
)

// Format is a document encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf picks the encoding from the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("scene.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Load reads and decodes the file at path
func Load(path string) (Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Decode(data, f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// Decode validates data against the scene schema and overlays it on Default
// Only structure and types are checked; degenerate values are accepted
func Decode(data []byte, f Format) (Config, error) {
	raw := map[string]any{}
	if err := unmarshal(data, f, &raw); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", f, err)
	}
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	c := Default()
	c.Models = nil
	if err := unmarshal(data, f, &c); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", f, err)
	}
	if c.Models == nil {
		c.Models = DefaultModels(c.Room.WallDistance)
	}
	for i := range c.Models {
		m := &c.Models[i]
		if m.Kind == "" {
			m.Kind = room.FigureBlock
		}
		if m.Scale == 0 {
			m.Scale = 1
		}
	}
	return c, nil
}

// Encode writes c in the given format
func Encode(c Config, f Format) ([]byte, error) {
	switch f {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, ErrUnknownFormat
}

func unmarshal(data []byte, f Format, v any) error {
	switch f {
	case FormatTOML:
		return toml.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	}
	return ErrUnknownFormat
}

// validate runs the schema over a JSON view of the decoded document
func validate(raw map[string]any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
