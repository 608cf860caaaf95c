// Package utils provides the value coercions shared by the CSV export and the
// key-value store adapter, which keeps every field as a string.
package utils
