// Package services implements the driving ports on top of the driven ones.
//
// Each store service loads its collection once, mutates a copy and hands the
// whole collection back to its repository. A failed save leaves the previous
// collection in place.
package services
