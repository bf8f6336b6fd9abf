// Package document implements the grapheme-accurate text model for takkun.
//
// Text is a sequence of rows; a row is a sequence of cells; a cell is one
// grapheme cluster with a display width and a paint style. The cursor is a
// 0-based (cell index, row index) pair and every operation leaves it inside
// the document: 0 <= Y < max(1, rows), 0 <= X <= row length.
package document
