// Package format names the text formats a content tree can be read from and
// written to.
package format
