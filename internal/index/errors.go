package index

import "errors"

// ErrNotBuilt reports a query against a service that has never completed a
// successful corpus build. Serving must not silently degrade to empty
// results, so this surfaces as an error rather than a default.
var ErrNotBuilt = errors.New("index not built")
