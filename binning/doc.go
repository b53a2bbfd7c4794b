// Package binning describes integration bins in reciprocal space and answers
// geometric questions about them.
//
// What & Why:
//
//	A bin is a parallelepiped in momentum space plus an energy width. Its
//	shape is given in local coordinates (u, v, w) of a possibly sheared
//	direction frame; in those coordinates the bin is the axis-aligned box of
//	its bounds. The package provides:
//
//	  - BinSpec: crystal, frame, per-axis bounds and ΔE of one bin shape.
//	  - Bin: a BinSpec placed at an RLU center and an energy.
//	  - UniformBinning: a uniform (Nu,Nv,Nw) grid of bin centers plus an energy
//	    axis, built from per-axis center lists or [lo, hi] pairs.
//	  - CornersOfParallelepiped / ExtremaOfBox: corners and axis-aligned
//	    bounding boxes of sheared boxes.
//	  - FindPointsInBin: boundary-inclusive membership in local coordinates.
//	  - Config: YAML description of a uniform binning.
//
// All constructors validate eagerly and return sentinel errors (errors.Is);
// the resulting values are immutable and safe for concurrent readers.
package binning
