// Package export serializes a finished batch's results to a tabular file.
//
// Three formats are supported: CSV and JSON for spreadsheet and scripting
// consumers, and a single-table SQLite database for anything that prefers
// SQL. The writer takes the results exactly as the analysis session produced
// them; callers that want a stable order sort first with SortByFilename.
// A sidecar file lock keeps two concurrent runs from interleaving writes to
// the same destination.
package export
