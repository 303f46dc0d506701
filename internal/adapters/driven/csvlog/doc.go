// Package csvlog reads well-log tables from comma-separated text and
// exports annotated datasets back to it.
//
// Adapters:
//   - Reader: driven.TableReader for uploaded CSV files
//   - Writer: driven.Exporter producing UTF-8 CSV with a byte order mark
package csvlog
