// Package diag implements the two-level error reporting scheme of
// spec.md 4.F: warnings (bump-on-zero, used-global-search,
// connectivity-complete) print a short header and let the caller's
// transport call continue, while fatal geometry conditions (missing surface
// connectivity, a point no cell claims, lost particle) are carried as a
// structured error value with a dump of the offending cell's bounding
// surfaces and their known neighborhoods. Precondition violations are not
// reported through this package; package transport returns them as
// sentinel errors.
package diag
