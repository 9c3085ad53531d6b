package clustering

import "errors"

var (
	// ErrEmptyClusterName indicates a nonblank line whose cluster-name cell
	// is empty.
	ErrEmptyClusterName = errors.New("clustering: empty cluster name")

	// ErrReservedName indicates a declared cluster using the reserved
	// "unclustered" name, which the derived complement needs for itself.
	ErrReservedName = errors.New("clustering: cluster name is reserved")
)
