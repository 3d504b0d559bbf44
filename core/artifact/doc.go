// Package artifact serializes a compiled table.
//
// Two encodings are supported:
//
//   - json: a data-only JSON object, two-space indented, with a trailing newline.
//   - module: the same object assigned to an exported constant in an ES module,
//     the shape the svg-element-attributes package publishes.
//
// Keys are written in byte order, which places "*" before every element name.
// Attribute lists are sorted, deduplicated and never null.
package artifact
