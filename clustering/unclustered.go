package clustering

import "fmt"

// UnclusteredName is the reserved name of the derived cluster holding every
// valid member assigned to no declared cluster.
const UnclusteredName = "unclustered"

// Unclustered returns the members of universe that belong to no cluster in
// c, in universe order. An empty result means every member is clustered.
//
// Returns ErrReservedName when c itself declares a cluster named
// UnclusteredName: that collision is a caller error, not something to
// resolve silently.
func Unclustered(c *Clustering, universe []string) ([]string, error) {
	if _, ok := c.members[UnclusteredName]; ok {
		return nil, fmt.Errorf("clustering: %q is declared by the input: %w", UnclusteredName, ErrReservedName)
	}
	clustered := make(map[string]struct{})
	for _, set := range c.members {
		for m := range set {
			clustered[m] = struct{}{}
		}
	}
	var leftover []string
	for _, m := range universe {
		if _, ok := clustered[m]; !ok {
			leftover = append(leftover, m)
		}
	}
	return leftover, nil
}

// WithUnclustered returns a copy of c extended with the derived
// "unclustered" cluster for the given member universe. When every member of
// the universe is clustered, the copy carries no such cluster. The receiver
// clustering is never modified.
func WithUnclustered(c *Clustering, universe []string) (*Clustering, error) {
	leftover, err := Unclustered(c, universe)
	if err != nil {
		return nil, err
	}
	cp := c.clone()
	if len(leftover) == 0 {
		return cp, nil
	}
	set := make(map[string]struct{}, len(leftover))
	for _, m := range leftover {
		set[m] = struct{}{}
	}
	cp.names = append(cp.names, UnclusteredName)
	cp.members[UnclusteredName] = set
	return cp, nil
}
