package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rosagold/rosatheme/internal/theme"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsYAMLOutput reports whether --yaml was given.
func IsYAMLOutput() bool {
	return yamlOutput
}

// IsStructuredOutput reports whether output goes through WriteOutput.
func IsStructuredOutput() bool {
	return IsJSONOutput() || IsYAMLOutput()
}

// WriteOutput encodes v as YAML with --yaml and as indented JSON otherwise.
func WriteOutput(out io.Writer, v any) error {
	if IsYAMLOutput() {
		return writeYAML(out, v)
	}
	return writeJSON(out, v)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStyle prints a style map, structured or as a property table.
func writeStyle(out io.Writer, style theme.StyleMap) error {
	if IsStructuredOutput() {
		return WriteOutput(out, style)
	}
	return writeStyleTable(out, style)
}

func writeStyleTable(out io.Writer, style theme.StyleMap) error {
	if len(style) == 0 {
		_, err := fmt.Fprintln(out, "(empty)")
		return err
	}
	var rows [][]string
	style.Walk(func(path []string, property, value string) {
		key := strings.Join(append(append([]string(nil), path...), property), ".")
		rows = append(rows, []string{key, value})
	})
	return writeTable(out, []string{"PROPERTY", "VALUE"}, rows)
}
