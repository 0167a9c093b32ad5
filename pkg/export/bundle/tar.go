// Package bundle writes catalog entries into tar archives and drives export
// chains that start with a tar step.
package bundle

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/provide-io/pakfb/pkg/export"
)

func init() {
	export.Register(NewTarOperation())
}

// File is one named payload.
type File struct {
	Name string
	Data []byte
	Mode int64
}

// TarOperation bundles a single payload as "data". Multi-file bundles go
// through WriteTar.
type TarOperation struct {
	export.BaseOperation
}

// NewTarOperation creates a new TAR operation
func NewTarOperation() *TarOperation {
	return &TarOperation{
		BaseOperation: export.BaseOperation{
			OpID:   export.OpTar,
			OpName: "TAR",
		},
	}
}

// Apply creates a TAR archive holding input
func (o *TarOperation) Apply(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTar(&buf, []File{{Name: "data", Data: input}}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reverse returns the first file of a TAR archive
func (o *TarOperation) Reverse(input []byte) ([]byte, error) {
	files, err := ReadTar(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("empty tar archive")
	}
	return files[0].Data, nil
}

// WriteTar writes every file into one archive, keeping their names as paths.
func WriteTar(w io.Writer, files []File) error {
	tw := tar.NewWriter(w)
	now := time.Now()

	for _, f := range files {
		mode := f.Mode
		if mode == 0 {
			mode = 0o600
		}
		header := &tar.Header{
			Name:    f.Name,
			Mode:    mode,
			Size:    int64(len(f.Data)),
			ModTime: now,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header for %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("writing tar data for %s: %w", f.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar writer: %w", err)
	}
	return nil
}

// ReadTar reads every regular file from a tar stream.
func ReadTar(r io.Reader) ([]File, error) {
	tr := tar.NewReader(r)
	var files []File
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar header: %w", err)
		}
		if header.Size < 0 || header.Size > 1<<30 {
			return nil, fmt.Errorf("invalid file size: %d", header.Size)
		}
		data := make([]byte, header.Size)
		if _, err := io.ReadFull(tr, data); err != nil {
			return nil, fmt.Errorf("reading tar data for %s: %w", header.Name, err)
		}
		files = append(files, File{Name: header.Name, Data: data, Mode: header.Mode})
	}
}

// Export runs ops over files. A chain that starts with tar bundles all files
// and applies the remaining operations to the archive; any other chain needs
// exactly one file.
func Export(files []File, ops []uint8) ([]byte, error) {
	if len(ops) > 0 && ops[0] == export.OpTar {
		var buf bytes.Buffer
		if err := WriteTar(&buf, files); err != nil {
			return nil, err
		}
		return export.ApplyChain(buf.Bytes(), ops[1:])
	}

	if len(files) != 1 {
		return nil, fmt.Errorf("chain %q exports one file, got %d; start the chain with tar", export.ChainName(ops), len(files))
	}
	return export.ApplyChain(files[0].Data, ops)
}
