// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - LoadEngineConfig: maps stored keys onto the engine configuration
//     and predictor declarations
package file
