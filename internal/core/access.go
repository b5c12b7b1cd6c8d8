// AngelaMos | 2026
// access.go

package core

import "fmt"

// OwnedOrNotFound passes v through only when owner(v) is callerID. Absence
// and foreign ownership both come back as ErrNotFound so callers cannot
// probe for rows they do not own.
func OwnedOrNotFound[T any](
	v *T,
	err error,
	owner func(*T) int64,
	callerID int64,
) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil || owner(v) != callerID {
		return nil, fmt.Errorf("owned lookup: %w", ErrNotFound)
	}
	return v, nil
}
