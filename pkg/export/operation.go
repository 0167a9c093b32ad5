// Package export turns catalog entries into files on disk, optionally passed
// through a chain of operations such as tar bundling and compression.
// Operation implementations live in the compress and bundle sub-packages and
// register themselves on import.
package export

import "fmt"

// Operation identifiers
const (
	// No operation - raw data
	OpNone = 0x00

	// Bundle operations (0x01-0x0F)
	OpTar = 0x01 // POSIX TAR archive

	// Compression operations (0x10-0x2F)
	OpGzip  = 0x10 // GZIP compression
	OpBzip2 = 0x13 // BZIP2 compression
)

// Operation is one reversible transformation.
type Operation interface {
	ID() uint8
	Name() string

	// Apply transforms input (e.g. compresses it)
	Apply(input []byte) ([]byte, error)

	// Reverse undoes Apply
	Reverse(input []byte) ([]byte, error)
}

// BaseOperation provides ID and Name for implementations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OpNone:
		return "NONE"
	case OpTar:
		return "TAR"
	case OpGzip:
		return "GZIP"
	case OpBzip2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
