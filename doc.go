// Package binsampler computes sampling points for integration bins in
// reciprocal space and decides which points fall inside a bin.
//
// What is a bin?
//
//	A parallelepiped in momentum space plus a width in energy. Its shape is
//	an axis-aligned box in the local coordinates (u, v, w) of a direction
//	frame whose axes are given in reciprocal lattice units (RLU). The frame
//	may be sheared; the crystal's reciprocal basis B maps RLU to absolute
//	(Å⁻¹) space.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — dense matrices, pivoted LU, inverse, Jacobi eigensolver
//	lattice/  — Vec3/Mat3, direction frames, crystals, RLU ↔ absolute transforms
//	binning/  — BinSpec, Bin, UniformBinning, corners and bounding boxes,
//	            membership filter, YAML configuration
//	sampling/ — OddUp/OddDown, fixed-spacing grid, lab grid with padding,
//	            Gaussian extent, Monte Carlo
//
// Typical flow:
//
//	basis, _ := lattice.NewBasisFromCell(3.5, 3.5, 5.6, 90, 90, 120)
//	ub, _    := binning.NewUniformBinning(basis, lattice.Identity3(), axes)
//	bin, _   := ub.Bin(0, 0, 0, 0)
//	pts, _   := sampling.LabGrid(bin, 0.01, sampling.NoPadding{}, sampling.WithClip())
//
// All constructors validate eagerly and return sentinel errors; sampling
// and membership queries on validated values do not fail. Values are
// immutable and safe for concurrent readers. The Monte Carlo RNG is
// injected (WithRand/WithSeed) and must not be shared between goroutines.
//
//	go get github.com/katalvlaran/binsampler
package binsampler
