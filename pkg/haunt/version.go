// Package haunt carries the release version of the haunt module.
package haunt

// Version is the current release.
const Version = "0.1.0"
