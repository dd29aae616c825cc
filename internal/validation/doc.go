// Package validation gates raw tabular input before it reaches the
// normalization pipeline and the KPI engine.
//
// The validator checks the fixed 26-column weekly detail schema: column
// completeness at the file level, then required values, declared types,
// enum membership, non-negativity and custom rules per row. Findings are
// accumulated as structured data rather than returned as errors, so a
// batch of rows can partially succeed; business-rule oddities (week
// numbers outside the usual range, auto-corrected dates) surface as
// warnings and never block an import.
package validation
