package entropy

import (
	"bytes"
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool unavailable")
}

func TestOS_FillsDistinctPads(t *testing.T) {
	var a, b mnemonic.Secret
	require.NoError(t, OS.Fill(&a))
	require.NoError(t, OS.Fill(&b))

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestReader_ShortReadIsFatal(t *testing.T) {
	s := mnemonic.Secret{1, 2, 3}
	err := Reader{R: bytes.NewReader(make([]byte, 10))}.Fill(&s)

	assert.ErrorIs(t, err, kerrors.ErrRandomness)
	assert.True(t, s.IsZero())
}

func TestReader_FailingSource(t *testing.T) {
	var s mnemonic.Secret
	err := Reader{R: failingReader{}}.Fill(&s)

	assert.ErrorIs(t, err, kerrors.ErrRandomness)
	assert.Contains(t, err.Error(), "entropy pool unavailable")
}
