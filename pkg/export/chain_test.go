package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChain(t *testing.T) {
	tests := []struct {
		input string
		want  []uint8
	}{
		{"", []uint8{}},
		{"raw", []uint8{}},
		{"gzip", []uint8{OpGzip}},
		{"BZIP2", []uint8{OpBzip2}},
		{"tar.gz", []uint8{OpTar, OpGzip}},
		{"tgz", []uint8{OpTar, OpGzip}},
		{"tar.bz2", []uint8{OpTar, OpBzip2}},
		{"tar|bzip2", []uint8{OpTar, OpBzip2}},
		{" gzip | bzip2 ", []uint8{OpGzip, OpBzip2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChain(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChainErrors(t *testing.T) {
	for _, input := range []string{"zip", "tar|xz", "tar.xz"} {
		_, err := ParseChain(input)
		assert.Error(t, err, input)
	}
}

func TestParseChainDoesNotAliasNamedChains(t *testing.T) {
	ops, err := ParseChain("tar.gz")
	require.NoError(t, err)
	ops[0] = OpNone

	again, err := ParseChain("tar.gz")
	require.NoError(t, err)
	assert.Equal(t, []uint8{OpTar, OpGzip}, again)
}

func TestChainName(t *testing.T) {
	assert.Equal(t, "raw", ChainName(nil))
	assert.Equal(t, "tar|gzip", ChainName([]uint8{OpTar, OpGzip}))
	assert.Equal(t, "unknown_7f", ChainName([]uint8{0x7f}))
}

func TestGetUnknownOperation(t *testing.T) {
	_, err := Get(0x7f)
	assert.Error(t, err)

	_, err = ApplyChain([]byte("x"), []uint8{0x7f})
	assert.Error(t, err)
}

func TestEmptyChainIsIdentity(t *testing.T) {
	data := []byte("progs.dat")

	out, err := ApplyChain(data, nil)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	back, err := ReverseChain(out, nil)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "", Extension(nil))
	assert.Equal(t, ".tar.bz2", Extension([]uint8{OpTar, OpBzip2}))
	assert.Equal(t, ".gz", Extension([]uint8{OpGzip}))
}
