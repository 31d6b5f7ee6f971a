// Package internal contains the implementation packages for viewforge.
//
// # Package Organization
//
//   - types: geometry, colors, fonts, bitmaps, gradients and attribute types
//   - attributes: the immutable name->text Set and the text grammar
//   - description: the resource and variable tables builders resolve names against
//   - view: the object model built by the engine
//   - registry: type tags, builders and inheritance chains
//   - builders: builders for the stock view kinds
//   - engine: build, patch, describe and attribute catalogs
//   - attrstore: per-object storage of attributes no builder claimed
//   - layout: YAML view trees built through the engine
//   - config, logging, errors: ambient configuration, slog logging and the error taxonomy
//   - watcher: debounced file watching for live layouts
//   - version: build metadata
//
// A program registers builders into a registry, seals it, and hands it to
// an engine. Every operation afterwards is a read of the registry, so one
// engine may be shared between goroutines as long as each view object is
// touched by one goroutine at a time.
package internal
