// Package filehandler provides an output target that appends to a file.
//
// The file is opened with create/append semantics; missing parent
// directories are created. Every Handle call writes one formatted entry
// directly to the file, so nothing is lost when the process exits
// without calling Close.
package filehandler
