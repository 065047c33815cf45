// Package goboard is a small toolkit for working with positions on a
// square Go board — converting moves losslessly between the notations
// spoken by game records, servers, humans, and training pipelines.
//
// 🚀 What is goboard?
//
//	A pure-Go library built around one immutable codec:
//		• Canonical coordinates: (row, column) from the top-left, plus Pass
//		• Flat indices: row-major ints for policy/legal-move vectors
//		• SGF tokens: two-letter pairs from game records ("pd", "" = pass)
//		• KGS tokens: human-readable letter+number ("Q16", skipping I)
//		• sgfmill pairs: bottom-left-origin tuples for board-library interop
//
// ✨ Why choose goboard?
//
//   - Lossless by law – every conversion pair is a tested bijection
//   - Explicit failures – typed sentinel errors, no clamping, no panics
//   - Concurrency-safe – stateless value codec, share it freely
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	coords/ — the Codec, the Coord/Pass types, and the sentinel errors
//
// Quick ASCII example, 19×19:
//
//	canonical (3,15)  ↔  flat 72  ↔  SGF "pd"  ↔  KGS "Q16"  ↔  sgfmill (15,15)
//
// Dive into coords/doc.go for the full notation table and into the
// examples/ directory for runnable walkthroughs.
//
//	go get github.com/yesArjan/goboard/coords
package goboard
