package sink

import "errors"

var (
	// ErrInvalidTable is returned for table names that are not plain identifiers.
	ErrInvalidTable = errors.New("sink: invalid table name")
	// ErrNilProducer is returned by Pump when no row producer is given.
	ErrNilProducer = errors.New("sink: nil row producer")
)
