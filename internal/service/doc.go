// Package service runs a complete merge: it loads the clusters, the cluster
// memberships and the metadata stream concurrently, derives one signal per
// cluster, merges clusters that share a confident tag, reports a confidence
// histogram and commits the merged cluster list to disk.
//
// Loading is the only concurrent phase. All three loads must succeed before
// any signal is computed, and the first failure cancels the others. The
// output file is written only once every preceding phase has succeeded.
package service
