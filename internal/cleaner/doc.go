// Package cleaner turns the merged messages table into its analysis shape.
//
// The delimited category column is split into tokens of the form
// "<label>-<digit>". The label schema comes from an explicit label list or,
// when none is configured, from the first row that carries a category value.
// Every row is validated against that schema before any indicator is decoded,
// so a malformed input fails as a whole instead of being silently misaligned.
//
// Rows without a category value (outer-join rows present only in the
// messages input) receive missing indicators. After the indicator columns are
// appended, exact duplicate rows are removed with table.DropDuplicates.
package cleaner
