// Package svg implements the compile.Source adapters for the three SVG
// specification documents that list attributes per element.
//
// # Sources
//
//   - SVG 1.1 attribute index: ".property-table tr" rows; every ".element-name"
//     in a row takes every ".attr-name" of the same row. Typographic quotes are
//     stripped from cell text.
//   - SVG Tiny 1.2 attribute table: "#attributes .attribute" blocks with one
//     ".attribute-name" and any number of ".element" cells.
//   - SVG 2 attribute index: "tbody tr" rows with one ".attr-name span" and any
//     number of ".element-name span" cells. The SVG 2 index omits x, y, width and
//     height on symbol (w3c/svgwg#803); the adapter adds them back.
//
// Every adapter fetches its document once and fails when the record selector
// matches nothing, so a changed upstream layout never yields a silently
// incomplete table.
package svg
