// Package sizeclass defines the size classes of a segregated-storage
// allocator and maps request sizes onto them.
//
// # Overview
//
// Every allocation is rounded up to one of a fixed set of sizes, its size
// class. The set is described by an ordered list of ranges, each producing
// start, start+step, ... below end. Small sizes get dense steps to keep
// internal fragmentation low; large sizes get sparse steps to keep the
// table short.
//
// # Build and Lookup
//
//   - Build(ranges): concatenate the sizes of each range, in order
//   - NewTable(cfg): wrap a built table with lookups and statistics
//   - Table.Class(size): first class whose size is >= size
//   - Table.Size(class): byte size of a class
//
// The lookups scan the table linearly, which is correct when the table is
// strictly increasing. Build does not sort or deduplicate; Validate reports
// range lists that break the ordering.
//
// # Generated Table
//
// zsizeclasses.go holds DefaultConfig compiled in as a constant array, with
// NumClasses and the SizeClass / SizeFromClass lookups. It is regenerated
// with "go generate" and must match NewTable(DefaultConfig).
//
// # Out-of-Range Input
//
// Lookups never read past the table:
//
//	Table.Class(size > MaxSize)   → Len(), ErrOutOfRange
//	Table.Size(class ∉ [0,Len))   → 0, ErrBadClass
//	SizeClass(size > max)         → NumClasses
//	SizeFromClass(class ∉ range)  → 0
//
// # Reference Configuration
//
//	[8,512,8]            63 classes
//	[512,1024,64]         8 classes
//	[1024,8192,512]      14 classes
//	[8192,16384,1024]     8 classes
//	[16384,32768,2048]    8 classes
//	[16384,262144,16384] 15 classes
//
// The last two ranges both start at 16384, so class 101 duplicates class 93
// and Class never returns it. ConfigNonOverlapping starts the last range at
// 32768 instead.
//
// # Thread Safety
//
// A Table is immutable after NewTable and the generated array is never
// written, so all lookups may run concurrently without locks.
package sizeclass
