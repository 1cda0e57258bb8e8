// SPDX-License-Identifier: MIT

// Package keycode models the activation evidence of brain regions: for each
// region, the set of study/contrast identifiers (keycodes) that report it.
//
// A region list is a []Set indexed by region position; every downstream
// matrix uses the same order. Readers cover the two export layouts of the
// source database:
//
//   - ReadExcelCSV: one column per region, header row = region names,
//     cells = keycodes (blank cells ignored).
//   - ReadWorkspace: one file per region; rows whose first column is > 0
//     contribute the keycode column1+column5.
//
// Sets never alias their inputs; every operation returns fresh values.
package keycode
