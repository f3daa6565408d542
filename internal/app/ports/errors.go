package ports

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// CorruptSnapshotError is returned by stores that found a stored snapshot they
// could not decode. Version is the stored version when the store tracks it
// outside the payload, so a fresh state can replace the row.
type CorruptSnapshotError struct {
	OwnerID string
	Version int64
	Err     error
}

func (e *CorruptSnapshotError) Error() string {
	if e.Err == nil {
		return ErrCorruptSnapshot.Error()
	}
	return ErrCorruptSnapshot.Error() + ": " + e.Err.Error()
}

func (e *CorruptSnapshotError) Unwrap() error {
	return ErrCorruptSnapshot
}
