// Package sink persists a compiled table and reads it back.
//
// Three destinations are available:
//
//   - FileSink: the encoded artifact on local disk, replaced atomically.
//   - StorageSink: the encoded artifact as an S3/MinIO object.
//   - DatabaseSink: one row per (element, attribute) pair in element_attributes,
//     replaced in a single transaction. Global attributes use the element "*".
//
// A build calls Write once per sink, only after the whole table has been compiled
// and validated. Every sink also implements Reader for the lookup server.
package sink
