// Package gittypes defines the shared vocabulary used to describe Git
// repository data: object kinds, configuration levels, sum types over Git
// objects, diff statistics, progress callbacks, and capability interfaces.
//
// Closed sets in this package are meant to be switched on exhaustively. The
// default branch of such a switch should hand the unexpected value to
// [Never] (or [AssertNever]) so a forgotten case surfaces as an error rather
// than a silent fall through.
package gittypes
