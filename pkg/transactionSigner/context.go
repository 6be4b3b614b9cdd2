package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// FallbackGasTipCap is used when the node does not support eth_maxPriorityFeePerGas
var FallbackGasTipCap = big.NewInt(15000000000)

// SigningContext provides common functionality for transaction signing
type SigningContext struct {
	ethClient EthBackend
	logger    *zap.Logger
	chainID   *big.Int
}

// NewSigningContext creates a new signing context
func NewSigningContext(ctx context.Context, ethClient EthBackend, logger *zap.Logger) (*SigningContext, error) {
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &SigningContext{
		ethClient: ethClient,
		logger:    logger,
		chainID:   chainID,
	}, nil
}

func (sc *SigningContext) ChainID() *big.Int {
	return new(big.Int).Set(sc.chainID)
}

// EstimateGasPriceAndLimit prices a transaction at 1.5x the latest base fee plus the suggested
// tip and pads the estimated gas limit by 20%.
func (sc *SigningContext) EstimateGasPriceAndLimit(ctx context.Context, from common.Address, tx *types.Transaction) (*GasEstimate, error) {
	gasTipCap, err := sc.ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		sc.logger.Sugar().Debugw("EstimateGasPriceAndLimit: cannot get gasTipCap, using fallback",
			"error", err.Error(),
		)
		gasTipCap = FallbackGasTipCap
	}

	header, err := sc.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	baseFee := header.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}
	overestimatedBasefee := new(big.Int).Div(new(big.Int).Mul(baseFee, big.NewInt(3)), big.NewInt(2))
	gasFeeCap := new(big.Int).Add(overestimatedBasefee, gasTipCap)

	gasLimit, err := sc.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		if IsRevertError(err) {
			return nil, fmt.Errorf("%w: gas estimation: %v", ErrTransactionReverted, err)
		}
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return &GasEstimate{
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		GasLimit:  addGasBuffer(gasLimit),
	}, nil
}

// addGasBuffer adds a buffer to the gas limit
func addGasBuffer(gasLimit uint64) uint64 {
	return 6 * gasLimit / 5 // add 20% buffer to gas limit
}
