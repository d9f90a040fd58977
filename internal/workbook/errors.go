package workbook

import "errors"

// ErrNotFound signals a row lookup miss. It stays internal to the storage
// and aggregation layers: callers create the row or no-op, they never
// surface it to a user.
var ErrNotFound = errors.New("workbook: row not found")

// ErrNoSheet signals an operation against a sheet the file does not have.
var ErrNoSheet = errors.New("workbook: no such sheet")
