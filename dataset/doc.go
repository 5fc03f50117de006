// Package dataset assembles training samples from atomic structures:
// simulated image, binary atom mask, metadata, and optionally the atom graph
// reconstructed from a mask.
//
// What:
//
//   - Split partitions N structure indices into train/val/test once, with a
//     dedicated seeded generator, so the assignment is reproducible and the
//     process-wide generator is left alone.
//   - Dataset.Get draws an augmentation (rotation, shift, zoom), simulates the
//     image, and builds the label in delta or radius mode.
//   - GraphDataset.Get additionally extracts an atomgraph.Graph from either the
//     ground-truth mask (Debug) or a Classifier prediction.
//   - Collect fetches many samples on a bounded worker pool.
//
// Sample lifecycle (per Get, nothing is cached):
//
//	RAW → AUGMENTED → SIMULATED → LABELED [→ GRAPH]
//
// Randomness:
//
//   - The split uses SplitOptions.Seed only.
//   - Augmentation draws a fresh stream per call: from the global source by
//     default, or derived from WithAugmentSeed for reproducible runs. The two
//     seeds must differ.
//
// Concurrency: Get is safe for concurrent use; the split is read-only after New.
//
// Errors:
//
//   - ErrUnsupportedLabelMode: label mode other than delta or radius.
//   - ErrBadConfig: non-positive pixel scale or probe, negative augmentation.
//   - ErrBadSplit: invalid split fractions or size.
//   - ErrIndexOutOfRange: Get outside [0, Len()).
//   - ErrMissingClassifier: non-debug graph dataset without a classifier.
//   - ErrSeedCollision: augmentation seed equals the split seed.
package dataset
