// Package plugin implements the simple_plugin build fixture: it reads a
// component description keyed by component type and rewrites it as a
// go_binary component.
package plugin

import (
	"errors" // errors is used for the sentinel errors
	"fmt"    // fmt is used to wrap decode and encode errors
	"io"     // io is used for the stdin/stdout streams and the io.EOF check

	json "github.com/goccy/go-json" // go-json is the JSON codec for plugin input and output
)

///////////////////////////////////////////////////////////////////////////////
// Component types
///////////////////////////////////////////////////////////////////////////////

const (
	// InputKey is the component type the plugin consumes.
	InputKey = "simple_plugin"

	// OutputKey is the component type the plugin produces.
	OutputKey = "go_binary"
)

var (
	// ErrMissingName is returned when the simple_plugin component has no name.
	ErrMissingName = errors.New("require component name")

	// ErrTrailingData is returned when the input holds more than one JSON value.
	ErrTrailingData = errors.New("trailing data after json object")
)

// Input is the simple_plugin component.
type Input struct {
	Name    string   `json:"name"`    // Name is the component name, required
	Sources []string `json:"sources"` // Sources lists the component's source files
}

// NewInput is an initializer function for Input.
func NewInput(name string, sources []string) *Input {
	return &Input{
		Name:    name,
		Sources: sources,
	}
}

// Output is the go_binary component built from an Input.
type Output struct {
	Name      string   `json:"name"`       // Name is copied from Input.Name
	GoSources []string `json:"go_sources"` // GoSources is copied from Input.Sources
}

// NewOutput is an initializer function for Output.
func NewOutput(in *Input) *Output {
	return &Output{
		Name:      in.Name,
		GoSources: in.Sources,
	}
}

///////////////////////////////////////////////////////////////////////////////
// Transform
///////////////////////////////////////////////////////////////////////////////

// Transform decodes exactly one JSON object from r and writes the matching
// go_binary object, followed by a newline, to w. Anything but whitespace
// after the object is an error.
func Transform(r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(r)

	raw := make(map[string]*Input)
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("could not parse json: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return fmt.Errorf("could not parse json: %w", err)
	}

	in := raw[InputKey]
	if in == nil || in.Name == "" {
		return ErrMissingName
	}

	out := map[string]*Output{OutputKey: NewOutput(in)}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("json encoding error: %w", err)
	}
	return nil
}
