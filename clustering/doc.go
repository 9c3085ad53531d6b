// Package clustering parses gene clusterings: named sets of gene
// identifiers in tab-separated text.
//
// Each line holds a cluster name followed by members of that cluster:
//
//	cluster1<tab>item1<tab>item2
//	cluster2<tab>item5
//	cluster1<tab>item3
//
// A cluster may span multiple lines; its member set accumulates. Membership
// is set-semantics: a member repeated within a cluster is absorbed with a
// recorded warning, never an error. Likewise, when a valid-member filter is
// supplied (typically the gene labels of an expression matrix), members
// outside it are dropped with a warning so third-party clusterings that
// reference unknown genes still parse.
//
// Usage:
//
//	c, warnings, err := clustering.Parse(text,
//	  clustering.WithValidMembers(m.Genes()))
//
// The derived "unclustered" group — every valid member assigned to no
// cluster — is available via Unclustered / WithUnclustered. Its name is
// reserved: a clustering that declares it cannot be extended that way.
//
// Clusters iterate in first-declaration order, and a returned Clustering is
// immutable: accessors hand out copies.
package clustering
