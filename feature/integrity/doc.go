// Package integrity reports whether the persisted table and its database schema are sound.
//
// # Checks Provided
//
//   - Table: Validates the stored table (global entry present, lists sorted and deduplicated,
//     plain attribute names, no foreign attributes, no overlap with "*") and summarizes it.
//   - Schema: Verifies that the element_attributes table carries the columns the database sink needs.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/table : Runs the table check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
