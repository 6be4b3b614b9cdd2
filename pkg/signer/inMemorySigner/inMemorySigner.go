package inMemorySigner

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	cryptoUtils "github.com/xmiraclez/Pastebin-AVS-Proto/pkg/crypto"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
)

// recoveryIdOffset converts go-ethereum's 0/1 recovery id into the 27/28 form that
// ecrecover based contract verification expects.
const recoveryIdOffset = 27

type InMemorySigner struct {
	identity *cryptoUtils.OperatorIdentity
}

func NewInMemorySigner(identity *cryptoUtils.OperatorIdentity) *InMemorySigner {
	return &InMemorySigner{
		identity: identity,
	}
}

// PersonalMessageDigest is keccak256("\x19Ethereum Signed Message:\n" + len(message) + message)
func PersonalMessageDigest(message string) [32]byte {
	var digest [32]byte
	copy(digest[:], accounts.TextHash([]byte(message)))
	return digest
}

func (ims *InMemorySigner) SignMessage(message string) (*types.SignedResponse, error) {
	if ims.identity == nil || ims.identity.PrivateKey() == nil {
		return nil, fmt.Errorf("signer has no operator identity")
	}

	digest := PersonalMessageDigest(message)
	sig, err := crypto.Sign(digest[:], ims.identity.PrivateKey())
	if err != nil {
		return nil, fmt.Errorf("failed to sign message digest: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += recoveryIdOffset

	return &types.SignedResponse{
		Digest:    digest,
		Signature: sig,
	}, nil
}

func (ims *InMemorySigner) Address() common.Address {
	return ims.identity.Address()
}

// RecoverAddress returns the signer of a SignedResponse produced by SignMessage
func RecoverAddress(resp *types.SignedResponse) (common.Address, error) {
	if len(resp.Signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(resp.Signature))
	}
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, resp.Signature)
	if sig[crypto.RecoveryIDOffset] >= recoveryIdOffset {
		sig[crypto.RecoveryIDOffset] -= recoveryIdOffset
	}

	pub, err := crypto.SigToPub(resp.Digest[:], sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
