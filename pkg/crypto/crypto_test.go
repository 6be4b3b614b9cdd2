package crypto

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anvil account #0
const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestStringToECDSAPrivateKey(t *testing.T) {
	t.Run("with 0x prefix", func(t *testing.T) {
		pk, err := StringToECDSAPrivateKey(testPrivateKey)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testAddress), DeriveAddress(pk))
	})
	t.Run("without prefix", func(t *testing.T) {
		pk, err := StringToECDSAPrivateKey(testPrivateKey[2:])
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testAddress), DeriveAddress(pk))
	})
	t.Run("empty", func(t *testing.T) {
		_, err := StringToECDSAPrivateKey("  ")
		assert.Error(t, err)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := StringToECDSAPrivateKey("0xnothex")
		assert.Error(t, err)
	})
}

func TestOperatorIdentity(t *testing.T) {
	identity, err := NewOperatorIdentity(testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), identity.Address())

	rendered := fmt.Sprintf("%v %+v %#v %s", identity, identity, identity, identity)
	assert.NotContains(t, rendered, testPrivateKey[2:])
	assert.Contains(t, rendered, identity.Address().Hex())

	generated, err := crypto.GenerateKey()
	require.NoError(t, err)
	fromKey := NewOperatorIdentityFromKey(generated)
	assert.Equal(t, crypto.PubkeyToAddress(generated.PublicKey), fromKey.Address())
	assert.Same(t, generated, fromKey.PrivateKey())
}
