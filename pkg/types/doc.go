// Package types defines the Item entity, the Store interface, configuration,
// and the sentinel errors shared by the larder storage backend and its
// callers.
package types
