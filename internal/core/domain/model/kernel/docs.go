// Package kernel contains shared value objects used across the dispatch domain.
//
// The central type is Schedule, the working/delivery hours window set. A
// schedule is built from "HH:MM-HH:MM" strings and always re-derived by
// flattening all boundary times, sorting them, and pairing consecutive
// boundaries. This matches the historical persistence format, in which hours
// are stored as a flat bag of boundary timestamps with no pairing information.
package kernel
