// Package refbook exposes module-level metadata.
package refbook

// Version is the refbook release version.
const Version = "0.1.0"
