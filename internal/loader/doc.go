// Package loader reads the cluster membership and metadata inputs of a merge
// run. The cluster list itself is read through a codec.Importer.
//
// Cluster memberships are small JSON documents read whole.
// The metadata file is newline-delimited JSON and is streamed line by line,
// so peak memory is bounded by the number of distinct network blocks rather
// than by the size of the file.
package loader
