package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"codesearch/internal/domain"
	"codesearch/internal/ui/views"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", formatTable:
		return formatTable, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// writeData encodes v as JSON or YAML
func writeData(w io.Writer, f format, v any) error {
	switch f {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func writeProjects(w io.Writer, f format, projects []string) error {
	if f != formatTable {
		if projects == nil {
			projects = []string{}
		}
		return writeData(w, f, projects)
	}
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "no projects indexed")
		return err
	}
	for _, p := range projects {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, f format, rows []domain.Row) error {
	if f != formatTable {
		return writeData(w, f, rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no matches")
		return err
	}
	_, err := fmt.Fprintln(w, views.RenderMatchTable(rows))
	return err
}

// writeStatus prints a one-line outcome, or {"ok": true, ...} for data formats
func writeStatus(w io.Writer, f format, message string, fields map[string]string) error {
	if f == formatTable {
		_, err := fmt.Fprintln(w, message)
		return err
	}
	out := map[string]any{"ok": true}
	for k, v := range fields {
		out[k] = v
	}
	return writeData(w, f, out)
}
