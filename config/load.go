package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/frascr/frascr"
)

// Format is a configuration file encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, path)
}

// Load reads the file at path over Default. A leading "~" is expanded, as
// are the log file, location and output files inside the configuration.
// Load does not validate.
func Load(path string) (*Options, error) {
	o := Default()
	if err := read(path, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Layer loads the first file with Load and merges each later file onto it.
// Later files only need the keys they change.
func Layer(paths ...string) (*Options, error) {
	if len(paths) == 0 {
		return Default(), nil
	}
	o, err := Load(paths[0])
	if err != nil {
		return nil, err
	}
	for _, path := range paths[1:] {
		over := new(Options)
		if err := read(path, over); err != nil {
			return nil, err
		}
		if err := o.Merge(over); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func read(path string, o *Options) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(bytes.NewReader(data), format, o); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := o.expand(); err != nil {
		return err
	}
	frascr.Logger().Debug("configuration loaded", "path", path, "format", string(format),
		"algorithm", o.Core.Algorithm, "output", o.Core.Output, "files", len(o.Core.File))
	return nil
}

// Decode reads one configuration from r into o. Unknown keys are errors.
func Decode(r io.Reader, format Format, o *Options) error {
	var err error
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// Encode writes o to w in the given format.
func Encode(w io.Writer, format Format, o *Options) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case TOML:
		return toml.NewEncoder(w).Encode(o)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

func (o *Options) expand() error {
	var err error
	if o.Debug.Output, err = homedir.Expand(o.Debug.Output); err != nil {
		return err
	}
	if o.Core.Location, err = homedir.Expand(o.Core.Location); err != nil {
		return err
	}
	for i, f := range o.Core.File {
		if o.Core.File[i], err = homedir.Expand(f); err != nil {
			return err
		}
	}
	return nil
}
