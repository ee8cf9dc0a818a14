// Package output writes the generated calendar document to its target path,
// fully replacing any previous file.
package output
