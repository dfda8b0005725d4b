// Package storage writes the calendar output file.
//
// The write is staged through a temporary file in the destination directory
// and renamed into place, so a crash mid-write never leaves a truncated
// calendar where a subscription URL is pointing. Paths may use a leading ~
// for the home directory; missing parent directories are created.
package storage
