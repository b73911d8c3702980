// Package utils contains small shared helpers for file handling and paths.
package utils
