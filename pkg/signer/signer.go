package signer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
)

type Signer interface {
	// SignMessage produces a personal-message attestation over the UTF-8 bytes of message
	SignMessage(message string) (*types.SignedResponse, error)
	Address() common.Address
}
