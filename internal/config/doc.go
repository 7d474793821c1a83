// Package config provides configuration loading, merging, and validation
// for the FHEVM server and CLI.
//
// Configuration is assembled from multiple sources. For each field the
// first source with a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
