// Package domain defines the core types for cluster/metadata correlation.
//
// A Cluster is an ordered list of domain names produced by an upstream
// clustering step and identified by its position in the input list. A
// Membership maps cluster indices to the IP addresses observed for them, and
// a MetadataIndex maps network-block keys (the classC of an IPv4 address) to
// the raw metadata observed on that block, such as PTR hostnames or WHOIS
// organisation strings.
//
// # Signals
//
// A Signal is the dominant normalised metadata tag of one cluster together
// with the fraction of the cluster's IPs that support it. Clusters whose
// signals share a tag above the merge threshold are coalesced into a single
// MergeGroup.
//
// # Errors
//
// The sentinel errors in this package classify every fatal condition of a
// merge run (bad arguments, malformed input, invalid threshold, I/O) and are
// matched with errors.Is.
package domain
