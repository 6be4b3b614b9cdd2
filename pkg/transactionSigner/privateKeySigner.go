package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	cryptoUtils "github.com/xmiraclez/Pastebin-AVS-Proto/pkg/crypto"
	"go.uber.org/zap"
)

// PrivateKeySigner implements TransactionSigner using the operator's private key
type PrivateKeySigner struct {
	*SigningContext
	identity *cryptoUtils.OperatorIdentity
}

func NewPrivateKeySigner(identity *cryptoUtils.OperatorIdentity, signingContext *SigningContext) (*PrivateKeySigner, error) {
	if identity == nil || identity.PrivateKey() == nil {
		return nil, fmt.Errorf("operator identity is required")
	}
	if signingContext == nil {
		return nil, fmt.Errorf("signing context is required")
	}
	return &PrivateKeySigner{
		SigningContext: signingContext,
		identity:       identity,
	}, nil
}

// NewTransactionSigner fetches the chain id from ethClient and builds a private key signer
func NewTransactionSigner(ctx context.Context, identity *cryptoUtils.OperatorIdentity, ethClient EthBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	signingContext, err := NewSigningContext(ctx, ethClient, logger)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeySigner(identity, signingContext)
}

// GetTransactOpts returns transaction options for building signed, unsent transactions
func (pks *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(pks.identity.PrivateKey(), pks.SigningContext.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.NoSend = true
	opts.Context = ctx
	return opts, nil
}

func (pks *PrivateKeySigner) GetFromAddress() common.Address {
	return pks.identity.Address()
}

func (pks *PrivateKeySigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*GasEstimate, error) {
	return pks.SigningContext.EstimateGasPriceAndLimit(ctx, pks.GetFromAddress(), tx)
}

// SignAndSendTransaction re-prices tx, signs it with the operator key, sends it and waits
// for it to be mined. A mined transaction with a failed status returns ErrTransactionReverted.
func (pks *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if tx.To() == nil {
		return nil, fmt.Errorf("contract creation transactions are not supported")
	}
	estimate, err := pks.EstimateGasPriceAndLimit(ctx, tx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(pks.identity.PrivateKey(), pks.SigningContext.chainID)
	if err != nil {
		return nil, fmt.Errorf("cannot create transactOpts: %w", err)
	}
	opts.Context = ctx
	opts.Nonce = new(big.Int).SetUint64(tx.Nonce())
	opts.Value = tx.Value()
	opts.GasTipCap = estimate.GasTipCap
	opts.GasFeeCap = estimate.GasFeeCap
	opts.GasLimit = estimate.GasLimit

	contract := bind.NewBoundContract(*tx.To(), abi.ABI{}, pks.SigningContext.ethClient, pks.SigningContext.ethClient, pks.SigningContext.ethClient)

	pks.SigningContext.logger.Sugar().Infow("Sending transaction",
		"to", tx.To().Hex(),
		"nonce", tx.Nonce(),
		"gasTipCap", estimate.GasTipCap.String(),
		"gasFeeCap", estimate.GasFeeCap.String(),
		"gasLimit", estimate.GasLimit,
	)

	sent, err := contract.RawTransact(opts, tx.Data())
	if err != nil {
		if IsRevertError(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransactionReverted, err)
		}
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	pks.SigningContext.logger.Sugar().Infow("Sent transaction", "txHash", sent.Hash().Hex())

	return pks.ensureTransactionEvaled(ctx, sent)
}

// ensureTransactionEvaled waits for transaction to be mined and checks status
func (pks *PrivateKeySigner) ensureTransactionEvaled(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, pks.SigningContext.ethClient, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s to mine: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		pks.SigningContext.logger.Sugar().Errorw("Transaction failed",
			"txHash", receipt.TxHash.Hex(),
			"blockNumber", receipt.BlockNumber,
			"gasUsed", receipt.GasUsed,
		)
		return receipt, fmt.Errorf("%w: tx %s", ErrTransactionReverted, receipt.TxHash.Hex())
	}
	pks.SigningContext.logger.Sugar().Infow("Transaction succeeded",
		"txHash", receipt.TxHash.Hex(),
		"blockNumber", receipt.BlockNumber,
	)
	return receipt, nil
}
