package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/act3-ai/gitkit/pkg/apis/gitkit.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

// writeOutput encodes v to w in format. comment heads YAML documents and is
// dropped for JSON.
func writeOutput(w io.Writer, format v1alpha1.OutputFormat, v any, comment string) error {
	switch format {
	case v1alpha1.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case v1alpha1.OutputYAML:
		content, err := toYamlNodes(v)
		if err != nil {
			return err
		}
		doc := &yaml.Node{Kind: yaml.DocumentNode, Content: content, HeadComment: comment}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close() //nolint:wrapcheck
	default:
		return gittypes.Never(format)
	}
}

// toYamlNodes converts v into a array of yaml.Nodes to be inserted into another document.
func toYamlNodes(v any) ([]*yaml.Node, error) {
	node := &yaml.Node{}
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	err = yaml.Unmarshal(data, node)
	if err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return node.Content, nil
}

// progressPrinter renders progress reports on w. Reports of a running
// operation overwrite each other; the end of an operation and reports
// without an operation keep their line.
func progressPrinter(w io.Writer) gittypes.ProgressFunc {
	out := termenv.NewOutput(w)
	return func(op gittypes.OpCode, cur, total gittypes.ProgressValue, message string) {
		line := gittypes.FormatProgress(op, cur, total, message)
		if op.Operation() == 0 {
			_, _ = fmt.Fprintln(out, out.String(line).Faint())
			return
		}
		end := ""
		if op&gittypes.OpEnd != 0 {
			end = "\n"
		}
		_, _ = fmt.Fprintf(out, "\r%s%s", line, end)
	}
}
