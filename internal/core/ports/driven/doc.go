// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Predictor: An opaque batch model (regression or classification)
//   - PredictorRegistry: Immutable set of predictors loaded at startup
//   - HeaderNormaliser: Canonicalises raw column labels
//   - Stage / StagePipeline: Enrichment passes over a dataset
//   - TableReader: Parses an uploaded table into header and rows
//   - Exporter: Serialises an annotated dataset
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, predictor, or stage package
package driven
