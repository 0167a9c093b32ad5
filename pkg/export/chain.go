package export

import (
	"fmt"
	"strings"
)

// Named chains for parsing
var namedChains = map[string][]uint8{
	"raw":   {},
	"gzip":  {OpGzip},
	"gz":    {OpGzip},
	"bzip2": {OpBzip2},
	"bz2":   {OpBzip2},
	"tar":   {OpTar},

	"tar.gz":  {OpTar, OpGzip},
	"tar.bz2": {OpTar, OpBzip2},
	"tgz":     {OpTar, OpGzip},
	"tbz2":    {OpTar, OpBzip2},
}

var namedOperations = map[string]uint8{
	"TAR":   OpTar,
	"GZIP":  OpGzip,
	"BZIP2": OpBzip2,
}

// ParseChain parses "raw", a named chain like "tar.gz", or a pipe separated
// list like "tar|bzip2" into operation IDs in application order.
func ParseChain(s string) ([]uint8, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return []uint8{}, nil
	}
	if ops, ok := namedChains[s]; ok {
		return append([]uint8{}, ops...), nil
	}

	if strings.Contains(s, "|") {
		var ops []uint8
		for _, part := range strings.Split(s, "|") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			op, ok := namedOperations[part]
			if !ok {
				return nil, fmt.Errorf("unsupported operation: %s", part)
			}
			ops = append(ops, op)
		}
		return ops, nil
	}

	return nil, fmt.Errorf("unknown operation chain: %s", s)
}

// ChainName renders ops as a pipe separated list.
func ChainName(ops []uint8) string {
	if len(ops) == 0 {
		return "raw"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// ApplyChain applies a chain of operations to data
func ApplyChain(data []byte, ops []uint8) ([]byte, error) {
	current := data
	for _, id := range ops {
		op, err := Get(id)
		if err != nil {
			return nil, err
		}
		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}
		current = result
	}
	return current, nil
}

// ReverseChain undoes a chain, last operation first.
func ReverseChain(data []byte, ops []uint8) ([]byte, error) {
	current := data
	for i := len(ops) - 1; i >= 0; i-- {
		op, err := Get(ops[i])
		if err != nil {
			return nil, err
		}
		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}
		current = result
	}
	return current, nil
}

// Extension returns the file suffix a chain adds, e.g. ".tar.gz".
func Extension(ops []uint8) string {
	var ext strings.Builder
	for _, op := range ops {
		switch op {
		case OpTar:
			ext.WriteString(".tar")
		case OpGzip:
			ext.WriteString(".gz")
		case OpBzip2:
			ext.WriteString(".bz2")
		}
	}
	return ext.String()
}
