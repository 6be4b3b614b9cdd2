package crypto

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// StringToECDSAPrivateKey parses a hex encoded secp256k1 private key, with or without 0x prefix
func StringToECDSAPrivateKey(pk string) (*ecdsa.PrivateKey, error) {
	pk = strings.TrimSpace(pk)
	pk = strings.TrimPrefix(strings.TrimPrefix(pk, "0x"), "0X")
	if pk == "" {
		return nil, fmt.Errorf("private key is empty")
	}
	privateKey, err := crypto.HexToECDSA(pk)
	if err != nil {
		return nil, fmt.Errorf("failed to convert hex string to ECDSA private key: %w", err)
	}
	return privateKey, nil
}

func DeriveAddress(pk *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(pk.PublicKey)
}

// OperatorIdentity is the operator's signing key and derived address. It is immutable
// once constructed and safe to share between goroutines.
type OperatorIdentity struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

func NewOperatorIdentity(privateKeyHex string) (*OperatorIdentity, error) {
	privateKey, err := StringToECDSAPrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}
	return NewOperatorIdentityFromKey(privateKey), nil
}

func NewOperatorIdentityFromKey(privateKey *ecdsa.PrivateKey) *OperatorIdentity {
	return &OperatorIdentity{
		privateKey: privateKey,
		address:    DeriveAddress(privateKey),
	}
}

func (oi *OperatorIdentity) Address() common.Address {
	return oi.address
}

// PrivateKey is exposed for transaction and attestation signers only.
func (oi *OperatorIdentity) PrivateKey() *ecdsa.PrivateKey {
	return oi.privateKey
}

// String never renders key material.
func (oi *OperatorIdentity) String() string {
	return fmt.Sprintf("OperatorIdentity{address: %s}", oi.address.Hex())
}

func (oi *OperatorIdentity) GoString() string {
	return oi.String()
}
