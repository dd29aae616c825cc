// Package shared provides common utilities and test helpers used across
// the weekpi codebase. It serves as a central location for functionality
// that doesn't belong to any specific domain or architectural layer.
//
// The testutil subpackage provides a buffered slog handler for asserting
// on log output and fixture builders for insurance records and raw CSV
// documents used throughout the package tests.
package shared
