// Package layout reads and writes YAML view trees and turns them into built
// views through an engine.
//
//	views:
//	  - class: Container
//	    attributes:
//	      size: 200, 100
//	    children:
//	      - class: Knob
//	        attributes: {origin: "10, 10", control-tag: Gain}
package layout

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/viewforge/internal/attributes"
	verrors "github.com/conneroisu/viewforge/internal/errors"
)

// Node is one view in a document.
type Node struct {
	Class      string         `json:"class" yaml:"class"`
	Attributes attributes.Set `json:"attributes" yaml:"attributes,omitempty"`
	Children   []Node         `json:"children,omitempty" yaml:"children,omitempty"`
}

// Document is an ordered list of root views.
type Document struct {
	Views []Node `json:"views" yaml:"views"`
}

// LoadFile reads a document from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verrors.NewIOError(verrors.ErrCodeFileNotFound, "cannot open layout "+path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a document. An empty input is an empty document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, verrors.NewIOError(verrors.ErrCodeDecodeFailed, "cannot decode layout", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	var walk func(nodes []Node, prefix string) error
	walk = func(nodes []Node, prefix string) error {
		for i := range nodes {
			path := nodePath(prefix, i)
			if nodes[i].Class == "" {
				return verrors.NewValidationError(verrors.ErrCodeValidation, path+": missing class")
			}
			if err := walk(nodes[i].Children, path+".children"); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(d.Views, "views")
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return verrors.NewInternalError(verrors.ErrCodeInternalFailure, "cannot encode layout", err)
	}
	return enc.Close()
}

// Bytes returns the YAML encoding of the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	var count func(nodes []Node) int
	count = func(nodes []Node) int {
		n := len(nodes)
		for _, node := range nodes {
			n += count(node.Children)
		}
		return n
	}
	return count(d.Views)
}
