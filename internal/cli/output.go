package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/rdsctl/rdsctl/internal/adapter"
)

// Output formats accepted by --output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// render writes the envelope's value in the requested format. Error
// envelopes are not rendered; the caller reports them.
func render(w io.Writer, env adapter.Envelope, format string) error {
	value, err := envelopeValue(env)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText:
		writeText(w, value, "")
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// envelopeValue normalises the envelope payload into plain maps, slices and
// scalars so every format sees the same field names as the JSON encoding
// of the SDK types.
func envelopeValue(env adapter.Envelope) (interface{}, error) {
	var value interface{}
	switch env.Kind {
	case adapter.KindError:
		return nil, env.Err
	case adapter.KindMetadata:
		value = map[string]string{
			"Operation": env.Operation,
			"RequestId": env.RequestID,
		}
	default:
		value = env.Payload
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", env.Operation, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", env.Operation, err)
	}
	return generic, nil
}

// writeText prints scalars on one line and objects as indented Key: Value
// lines, with a blank line between list items.
func writeText(w io.Writer, value interface{}, indent string) {
	switch v := value.(type) {
	case nil:
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k, child := range v {
			if empty(child) {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch child := v[k].(type) {
			case map[string]interface{}, []interface{}:
				fmt.Fprintf(w, "%s%s:\n", indent, k)
				writeText(w, child, indent+"  ")
			default:
				fmt.Fprintf(w, "%s%s: %v\n", indent, k, child)
			}
		}
	case []interface{}:
		for i, item := range v {
			if i > 0 {
				if _, ok := item.(map[string]interface{}); ok {
					fmt.Fprintln(w)
				}
			}
			writeText(w, item, indent)
		}
	default:
		fmt.Fprintf(w, "%s%v\n", indent, v)
	}
}

func empty(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}
