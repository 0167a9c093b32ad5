// Package pak reads and writes PACK archives and resolves resource names
// across an ordered set of mounted archives.
package pak

// Magic is the four byte signature at the start of every archive.
var Magic = [4]byte{'P', 'A', 'C', 'K'}

const (
	// Fixed sizes - part of the format
	HeaderSize    = 12 // magic (4) + directory offset (4) + directory length (4)
	EntrySize     = 64 // name (56) + position (4) + length (4)
	EntryNameSize = 56

	// Archive file naming used by MountDirectory
	archivePattern      = "pak%d.pak"
	archivePatternUpper = "PAK%d.PAK"
	maxProbedArchives   = 100

	// Read limits
	maxPreallocEntries = 4096
	maxPreallocBytes   = 1 << 20
	maxEmptyReads      = 100
)
