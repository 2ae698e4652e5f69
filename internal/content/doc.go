// Package content works on the rich-text HTML of business-plan templates:
// it extracts a title, marks colored section labels and input placeholders,
// and turns comma-separated pseudo-table blocks into tables.
//
// Pseudo-tables are delimited by TableStartMarker and TableEndMarker lines.
// The HTML preview (ExtractAndRenderTables) and the plain-text export
// (ExportPlainText, FormatPlainText) both detect them with ScanTables, so the
// two outputs always agree on which blocks are tables and what their cells are.
package content
