// Package report writes keyword records to disk and reads them back.
//
// The main functionalities include:
//   - Encoding a keyword.Record as JSON or YAML, to a file or any io.Writer.
//   - Exporting the keyword tree as a JUnit test suite.
//   - Decoding a previously written document into a keyword.Record.
//
// Child keywords are only written when a keyword has some: a leaf keyword has no "keywords" key.
package report
