// Package stemgraph turns atomic structures into simulated scanning
// transmission electron microscopy (STEM) samples and reconstructs
// attributed atom graphs from their atom masks.
//
// What is stemgraph?
//
//	A pipeline of small, independently testable packages:
//		• Masks: labelled grids, connected components, disk rasterisation
//		• Region statistics: area, centroid, intensity, equivalent radius
//		• Atom graphs: nodes from regions, radius-cutoff bonds in Å
//		• Simulation: a reference probe simulator over tiled lattices
//		• Datasets: seeded splits, augmentation, sample and graph assembly
//
// Under the hood, everything is organized under these subpackages:
//
//	species/      element table with atomic numbers and radii
//	atoms/        periodic structures (positions, numbers, lattice)
//	mask/         integer grids, component labelling, radius masks
//	regionprops/  per-component statistics over an intensity image
//	atomgraph/    Graph, bonds, and the mask→graph Extractor
//	converters/   gonum graph views and cluster queries
//	classify/     pixel classifiers (threshold, Otsu)
//	stem/         Simulator interface and ProbeSimulator
//	dataset/      Split, Dataset, GraphDataset and Collect
//	source/       JSON/YAML record files and a SQLite store
//	render/       image and graph overlays via gonum/plot
//	config/       viper-backed configuration
//	logging/      process-wide zap logger
//
// Quick ASCII example of a reconstructed 3 Å square lattice with a
// 4 Å cutoff (diagonals at 4.24 Å are not bonded):
//
//	    o───o───o
//	    │   │   │
//	    o───o───o
//
// The stemgraph command in cmd/stemgraph drives the whole pipeline.
//
//	go install github.com/katalvlaran/stemgraph/cmd/stemgraph@latest
package stemgraph
