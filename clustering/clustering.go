package clustering

import (
	"fmt"
	"sort"
)

// Clustering maps cluster names to member sets. Names iterate in
// first-declaration order; member sets contain no duplicates. A Clustering
// is immutable: accessors return copies.
type Clustering struct {
	names   []string
	members map[string]map[string]struct{}
}

// WarningKind classifies a data-quality warning.
type WarningKind int

const (
	// DuplicateMember: a member assigned to the same cluster twice; the set
	// absorbed the duplicate.
	DuplicateMember WarningKind = iota

	// UnknownMember: a member outside the valid-member filter; dropped.
	UnknownMember
)

func (k WarningKind) String() string {
	switch k {
	case DuplicateMember:
		return "duplicate member"
	case UnknownMember:
		return "unknown member"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal data-quality finding from Parse. Line is the
// 1-based input line the member appeared on.
type Warning struct {
	Kind    WarningKind
	Cluster string
	Member  string
	Line    int
}

func (w Warning) String() string {
	return fmt.Sprintf("clustering: line %d: %s %q in cluster %q", w.Line, w.Kind, w.Member, w.Cluster)
}

// Len returns the number of clusters.
func (c *Clustering) Len() int { return len(c.names) }

// Names returns the cluster names in first-declaration order.
func (c *Clustering) Names() []string { return append([]string(nil), c.names...) }

// Members returns the member set of a cluster, sorted for determinism, and
// whether the cluster exists.
func (c *Clustering) Members(name string) ([]string, bool) {
	set, ok := c.members[name]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, true
}

// Contains reports whether member belongs to the named cluster.
func (c *Clustering) Contains(name, member string) bool {
	_, ok := c.members[name][member]
	return ok
}

// clone deep-copies the clustering so derived variants never alias the
// original's sets.
func (c *Clustering) clone() *Clustering {
	cp := &Clustering{
		names:   append([]string(nil), c.names...),
		members: make(map[string]map[string]struct{}, len(c.members)),
	}
	for name, set := range c.members {
		ms := make(map[string]struct{}, len(set))
		for m := range set {
			ms[m] = struct{}{}
		}
		cp.members[name] = ms
	}
	return cp
}
