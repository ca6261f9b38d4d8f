// Package dirnuke scans or empties a set of independent directory trees concurrently.
//
// Every root is walked by its own goroutine using fastwalk. Workers never touch
// shared counters: each entry they process becomes an Outcome sent over a single
// channel, and one aggregator turns that stream into live progress and the final
// Summary. Directories and symbolic links are never counted, and links are never
// followed. In nuke mode only regular files are removed, directories stay in place.
package dirnuke
