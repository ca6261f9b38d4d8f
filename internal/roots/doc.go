// Package roots loads and validates the directories a run operates on.
//
// Validation turns raw paths into canonical ones, drops what does not exist,
// removes duplicates and refuses nested roots, so that no two workers can ever
// reach the same file.
package roots
