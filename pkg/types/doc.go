// Package types defines the Descriptor entity, the Repository contract,
// parent reference parsing, configuration, and the standard errors shared
// across the refbook packages.
package types
