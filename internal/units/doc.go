// Package units converts between unit-tagged strings and SI magnitudes for
// the quantities of a vibrating string.
//
// Values are parsed as a number followed by an optional unit:
//
//	v, _ := units.Parse("650 mm", units.Metre)    // 0.65
//	v, _ = units.Parse("8.2kgf", units.Newton)    // 80.41...
//	v, _ = units.Parse("7.85 g/cm³", units.KgPerM3) // 7850
//
// A bare number is taken to be SI already. Unit strings are NFKC-normalized,
// so superscripts and the micro sign are accepted, and a unit that differs
// only by case is matched when that is unambiguous.
package units
