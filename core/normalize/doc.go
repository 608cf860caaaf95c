// Package normalize canonicalizes the free-text attributes of a garment item
// before they enter the key space.
//
// Every function is pure and total: there is no failure mode, unknown input is
// passed through after trimming and upper-casing.
//
// # Digits
//
// Form input frequently arrives with Arabic-Indic (U+0660-U+0669) or Extended
// Arabic-Indic (U+06F0-U+06F9) digits. Digits maps both ranges to ASCII so that
// "٢XL" and "2XL" collapse to the same size token.
//
// # Usage
//
//	size := normalize.Size(" x ")     // "XL"
//	code := normalize.Code("ab١")     // "AB1"
//	color := normalize.Text(" navy ") // "NAVY"
package normalize
