// Package larder exposes module-level metadata.
package larder

// Version is the semantic version of the larder module.
const Version = "0.1.0"
