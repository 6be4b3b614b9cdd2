package transactionSigner

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrTransactionReverted is returned when a transaction is rejected by the EVM, either during
// gas estimation or as a failed receipt.
var ErrTransactionReverted = errors.New("transaction reverted")

// TransactionSigner provides methods for signing Ethereum transactions
type TransactionSigner interface {
	// GetTransactOpts returns transaction options for creating unsigned transactions
	GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error)

	// SignAndSendTransaction signs a transaction, sends it and waits for its receipt
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// GetFromAddress returns the address that will be used for signing
	GetFromAddress() common.Address

	// EstimateGasPriceAndLimit estimates fee caps and gas limit for a transaction
	EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*GasEstimate, error)
}

// EthBackend is the subset of an ethclient a signer needs to price, send and await transactions.
type EthBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

type GasEstimate struct {
	GasTipCap *big.Int
	GasFeeCap *big.Int
	GasLimit  uint64
}

// IsRevertError reports whether err means the EVM rejected the call, as opposed to a
// transport or node failure.
func IsRevertError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransactionReverted) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
