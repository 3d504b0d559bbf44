// Package reconcile reports, for every element, which source documents define it and
// which source lists each of its attributes.
//
// It works on the per-source contributions the compiler collects, so one fetch serves
// both the compiled table and the report.
//
// # Usage Example
//
//	table, contribs, err := compile.BuildWithContributions(ctx, sources, filter.Default)
//
//	// Full report
//	report := reconcile.ReconcileAll(contribs, filter.Default)
//
//	// One element
//	result, ok := reconcile.ReconcileOne(contribs, filter.Default, "symbol")
package reconcile
