// Package shell provides the platform implementations of the icon
// extraction boundary: it asks the operating system which icon belongs to
// a file and returns it as a decoded, handle-free bitmap.
package shell
