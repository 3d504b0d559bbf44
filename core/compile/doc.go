// Package compile provides the extraction-normalization-merge pipeline that turns
// several specification documents into one element -> attributes lookup table.
//
// # Architecture
//
// 1. Source: per-document implementations that fetch a document and return an
//    AttributeMap (element name -> attribute names observed in that document).
//
// 2. DeriveGlobals: computes, within one source only, the attributes present on
//    every element that source knows about.
//
// 3. Merge: unions all contributions into one Table. An attribute is excluded from
//    an element's list when it is global in the same source or when the Classifier
//    marks it as foreign. The union of all global sets is emitted under "*".
//
// # Concurrency
//
// Collect runs every source concurrently and waits for all of them. The first
// failure cancels the others and aborts the run: no partial table is ever built.
//
// # Usage Example
//
//	table, err := compile.Build(ctx, svg.Sources(cfg.Sources, client), filter.Default)
//	if err != nil {
//	    return err
//	}
//	if violations := table.Validate(filter.Default); len(violations) > 0 {
//	    return compile.ErrInvalidTable
//	}
package compile
