// Package hashing provides MD5 checksum calculation utilities.
//
// This package implements transparent proxies for calculating MD5 checksums
// of data streams. The writer proxy fingerprints generated configuration
// artifacts (the checksum doubles as the download ETag), and the reader
// proxy fingerprints selection input files so repeated runs over unchanged
// input can be recognized in debug logs.
//
// # Components
//
//   - ChecksumWriterProxy: Calculates MD5 while writing to an io.Writer
//   - ChecksumReaderProxy: Calculates MD5 while reading from an io.Reader
//   - ChecksumProvider: Interface for types that provide checksums
//
// # Example Usage
//
// Fingerprinting bytes as they are written:
//
//	var buf bytes.Buffer
//	proxy := hashing.NewMD5WriterProxy(&buf)
//	proxy.Write(artifact)
//
//	checksum, _ := proxy.GetChecksum()
//	fmt.Printf("Wrote %d bytes, MD5: %s\n", buf.Len(), checksum)
//
// The proxy pattern allows checksum calculation without changing code that
// works with io.Reader/io.Writer interfaces. The checksum is computed
// incrementally, making it memory-efficient for large streams.
package hashing
