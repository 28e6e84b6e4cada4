// Package table implements the interaction model behind the Echo data table:
// row selection bookkeeping, per-column sort toggling, cell content decoding
// and the pagination window shown in the footer.
//
// Everything in this package is pure. State is passed in and returned as
// values so it can be exercised without a terminal.
package table
