// Package config describes the host the generated matcher is compiled into.
//
// The generator knows nothing about the instruction stream it matches
// against; every name the generated code uses to reach it comes from a Host.
// Each dialect has a default Host, and a YAML file can override any field:
//
//	func: doMatchLoop
//	receiver: r *monitorRule
//	params: ""
//	instructions: r.info.Instructions
//	upper_bound: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidHost is returned when a required host binding is empty.
var ErrInvalidHost = errors.New("invalid host configuration")

// Host holds the names of the host's instruction-stream API.
type Host struct {
	// Package and Imports are only used by the Go dialect. When Package is
	// empty a bare function is generated.
	Package string   `yaml:"package"`
	Imports []string `yaml:"imports,omitempty"`

	Func     string `yaml:"func"`
	Receiver string `yaml:"receiver"`
	// Params is prepended to the index parameter.
	Params string `yaml:"params"`
	Index  string `yaml:"index"`

	Instructions    string `yaml:"instructions"`
	InstructionType string `yaml:"instruction_type"`

	Kind          string `yaml:"kind"`
	KindType      string `yaml:"kind_type"`
	KindQualifier string `yaml:"kind_qualifier"`

	StoreLocal string `yaml:"store_local"`
	LoadLocal  string `yaml:"load_local"`
	Variable   string `yaml:"variable"`
	Call       string `yaml:"call"`
	Target     string `yaml:"target"`

	// UpperBound also fails the bounds guard when the index is past the end
	// of the instruction stream.
	UpperBound bool `yaml:"upper_bound"`
}

// GoHost is the default host of the go dialect.
func GoHost() Host {
	return Host{
		Func:          "DoMatch",
		Params:        "instructions []cil.Instruction",
		Index:         "index",
		Instructions:  "instructions",
		Kind:          "instruction.OpCode()",
		KindQualifier: "cil.",
		StoreLocal:    "*cil.StoreLocal",
		LoadLocal:     "*cil.LoadLocal",
		Variable:      "Variable",
		Call:          "*cil.Call",
		Target:        "Target.String()",
		UpperBound:    true,
	}
}

// CSharpHost is the default host of the csharp dialect. It targets the rule
// classes of the analyzer the notation was designed for.
func CSharpHost() Host {
	return Host{
		Func:            "DoMatch",
		Index:           "index",
		Instructions:    "m_info.Instructions",
		InstructionType: "TypedInstruction",
		Kind:            "instruction.Untyped.OpCode.Code",
		KindType:        "Code",
		KindQualifier:   "Code.",
		StoreLocal:      "StoreLocal",
		LoadLocal:       "LoadLocal",
		Variable:        "Variable",
		Call:            "Call",
		Target:          "Target.ToString()",
	}
}

// Default returns the default host for a dialect name. Unknown names get
// the Go host.
func Default(dialect string) Host {
	if dialect == "csharp" {
		return CSharpHost()
	}

	return GoHost()
}

// Validate checks that every binding the emitter always uses is set.
func (h Host) Validate() error {
	required := []struct {
		name, value string
	}{
		{"func", h.Func},
		{"index", h.Index},
		{"instructions", h.Instructions},
		{"kind", h.Kind},
		{"store_local", h.StoreLocal},
		{"load_local", h.LoadLocal},
		{"variable", h.Variable},
		{"call", h.Call},
		{"target", h.Target},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidHost, r.name)
		}
	}

	return nil
}

// Decode reads YAML from r on top of base. Fields missing from the document
// keep their value from base; unknown fields are an error.
func Decode(r io.Reader, base Host) (Host, error) {
	h := base

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return Host{}, fmt.Errorf("failed to decode host configuration: %w", err)
	}

	if err := h.Validate(); err != nil {
		return Host{}, err
	}

	return h, nil
}

// LoadFile reads a YAML host file on top of the dialect's default host.
func LoadFile(path string, dialect string) (Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Host{}, fmt.Errorf("failed to read host configuration: %w", err)
	}

	return Decode(bytes.NewReader(data), Default(dialect))
}

// Marshal renders h as YAML, the format LoadFile reads.
func (h Host) Marshal() ([]byte, error) {
	return yaml.Marshal(h)
}
