package clustering

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Parse parses a tab-separated clustering. Each line is a cluster name
// followed by member identifiers; the same cluster name may recur on later
// lines and its member set accumulates. Blank lines and empty member cells
// (from trailing tabs) are skipped.
//
// Duplicate members and — under WithValidMembers — unknown members are
// tolerated: each produces a Warning (also logged at Warn level) and
// parsing continues. The returned warnings are in input order.
//
// Errors: ErrEmptyClusterName (with the line number) is the only format
// error; everything else the format allows.
func Parse(text string, opts ...Option) (*Clustering, []Warning, error) {
	o := gatherOptions(opts)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	c := &Clustering{members: make(map[string]map[string]struct{})}
	var warnings []Warning
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("clustering: reading line: %w", err)
		}
		line, _ := r.FieldPos(0)

		name := rec[0]
		if name == "" {
			return nil, nil, fmt.Errorf("clustering: line %d: %w", line, ErrEmptyClusterName)
		}
		set, ok := c.members[name]
		if !ok {
			set = make(map[string]struct{})
			c.members[name] = set
			c.names = append(c.names, name)
		}
		for _, member := range rec[1:] {
			if member == "" {
				continue
			}
			if o.validMembers != nil {
				if _, valid := o.validMembers[member]; !valid {
					warnings = logWarning(warnings, o.logger, Warning{UnknownMember, name, member, line})
					continue
				}
			}
			if _, dup := set[member]; dup {
				warnings = logWarning(warnings, o.logger, Warning{DuplicateMember, name, member, line})
				continue
			}
			set[member] = struct{}{}
		}
	}
	return c, warnings, nil
}

func logWarning(warnings []Warning, logger *slog.Logger, w Warning) []Warning {
	logger.Warn(w.String(),
		"kind", w.Kind.String(), "cluster", w.Cluster, "member", w.Member, "line", w.Line)
	return append(warnings, w)
}
