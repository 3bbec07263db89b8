package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Renderer writes one rendered collection to w.
type Renderer interface {
	Render(w io.Writer, subs [][]int) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(w io.Writer, subs [][]int) error

// Render implements Renderer.
func (f RendererFunc) Render(w io.Writer, subs [][]int) error { return f(w, subs) }

// Format names of the built-in renderers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Text renders the bracketed, comma-and-space separated form.
var Text Renderer = RendererFunc(renderText)

// JSON renders a compact JSON array of arrays.
var JSON Renderer = RendererFunc(renderJSON)

// YAML renders a YAML flow sequence.
var YAML Renderer = RendererFunc(renderYAML)

// Bytes renders subs with r into a fresh buffer.
func Bytes(r Renderer, subs [][]int) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, subs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderText(w io.Writer, subs [][]int) error {
	b := make([]byte, 0, 16*len(subs)+3)
	b = append(b, '[')
	for i, sub := range subs {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, '[')
		for k, v := range sub {
			if k > 0 {
				b = append(b, ", "...)
			}
			b = strconv.AppendInt(b, int64(v), 10)
		}
		b = append(b, ']')
	}
	b = append(b, "]\n"...)
	_, err := w.Write(b)
	return err
}

func renderJSON(w io.Writer, subs [][]int) error {
	if subs == nil {
		subs = [][]int{}
	}
	// Encoder.Encode terminates the value with '\n'.
	return json.NewEncoder(w).Encode(subs)
}

func renderYAML(w io.Writer, subs [][]int) error {
	root := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, sub := range subs {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range sub {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(v),
			})
		}
		root.Content = append(root.Content, row)
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
