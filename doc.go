// Package receipts manages a directory of receipt files whose names encode
// the expense they stand for.
//
// A receipt file is named
//
//	<date>-<vendor>-<cost>-<description>-<category>-<location>.pdf
//
// for instance "010125-Acme-12.50-Lunch-Meals-southroads.pdf". The name is the
// only source of truth, there is no database.
//
// The core functionalities include:
//   - Decoding: validating a file name and decoding it into a Record.
//   - Loading: decoding a whole flat directory of receipts, failing on the
//     first invalid entry.
//   - Reporting: grouping records by category with exact decimal totals
//     (see Invoice and the renderer package).
//   - Splitting: sharing the cost of a receipt marked "split" between the
//     Southroads and Utica locations, to the cent.
//   - Sorting: copying receipts into one directory per location, split
//     receipts being copied into both with their share of the cost.
//
// This package serves as the foundational logic for the `rcp` command-line
// tool.
package receipts
