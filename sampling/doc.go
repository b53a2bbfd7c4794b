// Package sampling produces RLU point sets covering a bin, for numerical
// integration of a signal over the bin.
//
// Strategies:
//
//	FixedSpacing – odd-sized grid along the unit-normalized frame axes.
//	LabGrid      – Cartesian grid over the bin's absolute-space bounding box,
//	               grown by a Padding, reprojected into the bin frame.
//	Gaussian     – LabGrid with step and margin taken from a covariance.
//	MonteCarlo   – uniform draws in local coordinates from an injected RNG.
//
// Every grid has an odd number of points per axis (OddUp/OddDown) so that the
// nominal center is sampled. LabGrid over-covers a sheared bin; pass WithClip
// to keep only interior points, or filter later with binning.FindPointsInBin.
//
// The Sampler interface wraps each strategy behind one method so callers can
// swap them per bin.
package sampling
