package plugin

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	in := `{"simple_plugin": {"name": "hello", "sources": ["a.go", "b.go"]}}`

	var out bytes.Buffer
	require.NoError(t, Transform(strings.NewReader(in), &out))

	assert.True(t, strings.HasSuffix(out.String(), "\n"))

	var got map[string]Output
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]Output{
		OutputKey: {Name: "hello", GoSources: []string{"a.go", "b.go"}},
	}, got)
}

func TestTransformIgnoresOtherComponents(t *testing.T) {
	in := `{"cc_library": {"name": "other"}, "simple_plugin": {"name": "p", "sources": []}}`

	var out bytes.Buffer
	require.NoError(t, Transform(strings.NewReader(in), &out))
	assert.JSONEq(t, `{"go_binary": {"name": "p", "go_sources": []}}`, out.String())
}

func TestTransformMissingName(t *testing.T) {
	tests := []string{
		`{}`,
		`{"simple_plugin": {"sources": ["a.go"]}}`,
		`{"simple_plugin": {"name": ""}}`,
	}

	for _, in := range tests {
		var out bytes.Buffer
		err := Transform(strings.NewReader(in), &out)
		assert.True(t, errors.Is(err, ErrMissingName), in)
		assert.Empty(t, out.String())
	}
}

func TestTransformBadJSON(t *testing.T) {
	var out bytes.Buffer
	err := Transform(strings.NewReader(`{"simple_plugin":`), &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse json")
}

func TestTransformTrailingData(t *testing.T) {
	tests := []string{
		`{"simple_plugin": {"name": "p"}} garbage`,
		`{"simple_plugin": {"name": "p"}} {"simple_plugin": {"name": "q"}}`,
	}

	for _, in := range tests {
		var out bytes.Buffer
		err := Transform(strings.NewReader(in), &out)
		assert.Error(t, err, in)
		assert.Contains(t, err.Error(), "could not parse json", in)
		assert.Empty(t, out.String(), in)
	}
}

func TestTransformTrailingWhitespace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Transform(strings.NewReader("{\"simple_plugin\": {\"name\": \"p\"}}\n\n  "), &out))
	assert.JSONEq(t, `{"go_binary": {"name": "p", "go_sources": null}}`, out.String())
}

func TestNewOutputCopiesInput(t *testing.T) {
	out := NewOutput(NewInput("bin", []string{"main.go"}))
	assert.Equal(t, "bin", out.Name)
	assert.Equal(t, []string{"main.go"}, out.GoSources)
}

func TestTransformSecondObjectIsTrailingData(t *testing.T) {
	in := `{"simple_plugin": {"name": "p"}}{"simple_plugin": {"name": "q"}}`

	var out bytes.Buffer
	err := Transform(strings.NewReader(in), &out)
	assert.True(t, errors.Is(err, ErrTrailingData))
	assert.Empty(t, out.String())
}
