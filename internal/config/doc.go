// Package config provides configuration loading, merging, and validation
// facilities for the frontend environment tooling.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Build-target preset (development or production)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The preset only fills fields that no other source has set.
//
// The main entry point is [GetStructuredConfig]; the frontend record itself
// is obtained with [StructuredConfig.Environment].
package config
