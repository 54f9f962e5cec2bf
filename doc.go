// Package voxlath is an in-memory toolkit for analyzing dense 3-D
// voxel volumes — starting with windowed connected-component labeling.
//
// 🚀 What is voxlath?
//
//	A small, focused library for binary volume analysis:
//		• Core primitives: a flat-backed 3-D Grid with safe construction
//		  and (x,y,z)<->index mapping
//		• label26: 26-connectivity component labeling whose growth is
//		  bounded to a reusable local window, with boundary requeueing
//		  instead of volume-wide flood fills or recursion
//
// ✨ Why choose voxlath?
//
//   - Predictable memory – per-step work is capped by the window, not
//     the component or volume size
//   - Deterministic output – fixed scan order, components numbered 1..K
//     in first-discovery order, identical result for every window shape
//   - Pure Go – no cgo, no hidden deps
//   - Observable – functional hooks (OnComponent, OnRequeue…) instead of
//     baked-in logging
//
// Everything is organized under two subpackages:
//
//	voxel/   — the Grid and Coord primitives shared by all algorithms
//	label26/ — windowed 26-connectivity component labeling
//
// Quick ASCII example (one z-plane, window radius 1):
//
//	1 1 0 0 2        foreground left of the gap becomes component 1,
//	1 0 0 2 2   →    the diagonal cluster on the right component 2 —
//	0 0 0 2 0        regardless of how small the growth window is.
//
// Dive into the package docs of voxel and label26 for the full contract,
// complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/voxlath
package voxlath
