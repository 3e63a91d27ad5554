// Package importer translates portable plan files into plans.
//
// The portable format is YAML and deliberately id-less: guests reference
// their group and their inviter by *name*, so files survive being edited
// by hand or produced by other tools. Import synthesizes fresh ids for
// everything, resolves names, and never fails on a dangling reference:
//
//   - unknown group name: the group is synthesized on the fly
//   - unknown parent name: the guest enters with no parent (a root)
//
// Files are validated against an embedded CUE schema before translation,
// so shape errors (wrong types, out-of-range priority, missing names)
// are reported with concrete messages instead of surfacing later as
// half-imported plans.
package importer
