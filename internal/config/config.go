package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the rule file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// RuleLayer maps a field name to the pattern the field must match.
// Any YAML scalar is accepted and read as its literal text.
type RuleLayer map[string]string

// RuleFile is the parsed rule file. A nil layer means the key was absent.
type RuleFile struct {
	All RuleLayer `yaml:"all"`
	PCB RuleLayer `yaml:"pcb"`
	SCH RuleLayer `yaml:"sch"`

	// Path is the file the rules were read from, used to annotate warnings.
	Path string `yaml:"-"`
}

// HasAll reports whether the rule file declares an "all" layer.
func (f *RuleFile) HasAll() bool { return f.All != nil }

// HasPCB reports whether the rule file declares a "pcb" layer.
func (f *RuleFile) HasPCB() bool { return f.PCB != nil }

// HasSCH reports whether the rule file declares a "sch" layer.
func (f *RuleFile) HasSCH() bool { return f.SCH != nil }

// FileReader reads whole files. filesystem.FileSystemProvider satisfies it.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Load reads and parses the rule file at path through r.
func Load(r FileReader, path string) (*RuleFile, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("could not open the config file at %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes rule file content. Empty documents yield an empty RuleFile.
func Parse(data []byte) (*RuleFile, error) {
	var cfg RuleFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse the yaml config file: %w", err)
	}

	// "all:" with no entries decodes to nil; keep the layer's presence
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err == nil {
		if _, ok := keys["all"]; ok && cfg.All == nil {
			cfg.All = RuleLayer{}
		}
		if _, ok := keys["pcb"]; ok && cfg.PCB == nil {
			cfg.PCB = RuleLayer{}
		}
		if _, ok := keys["sch"]; ok && cfg.SCH == nil {
			cfg.SCH = RuleLayer{}
		}
	}

	return &cfg, nil
}
