// Package domain defines the core well-log entities for litholog.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One depth sample with its curve values
//   - Dataset: An ordered set of records read from one input table
//   - FeatureVector: The numeric inputs handed to a predictor
//   - AnnotatedDataset: The read-only result handed to exporters and plotters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
