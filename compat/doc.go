// Package compat holds small helpers that mirror standard-library conveniences
// found in other toolchains: reading a whole file as text, and checked integer
// conversion.
package compat
