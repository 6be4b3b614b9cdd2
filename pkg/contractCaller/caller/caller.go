package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/clients/ethereum"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contractCaller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contracts/HelloWorldServiceManager"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/transactionSigner"
	"go.uber.org/zap"
)

type ContractCaller struct {
	serviceManager  *HelloWorldServiceManager.HelloWorldServiceManager
	contractAddress common.Address
	logger          *zap.Logger
	signer          transactionSigner.TransactionSigner
}

func NewContractCallerFromEthereumClient(
	ethClient *ethereum.EthereumClient,
	contractAddress common.Address,
	signer transactionSigner.TransactionSigner,
	logger *zap.Logger,
) (*ContractCaller, error) {
	client, err := ethClient.GetEthereumContractCaller()
	if err != nil {
		return nil, err
	}

	return NewContractCaller(client, contractAddress, signer, logger)
}

// NewContractCaller binds the service manager at contractAddress. signer may be nil for
// read-only use, in which case every write returns an error.
func NewContractCaller(
	backend bind.ContractBackend,
	contractAddress common.Address,
	signer transactionSigner.TransactionSigner,
	logger *zap.Logger,
) (*ContractCaller, error) {
	logger.Sugar().Debugw("Creating contract caller", zap.String("contractAddress", contractAddress.Hex()))

	serviceManager, err := HelloWorldServiceManager.NewHelloWorldServiceManager(contractAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create HelloWorldServiceManager: %w", err)
	}

	return &ContractCaller{
		serviceManager:  serviceManager,
		contractAddress: contractAddress,
		logger:          logger,
		signer:          signer,
	}, nil
}

func (cc *ContractCaller) SubmitTaskResponse(
	ctx context.Context,
	taskIndex uint32,
	task contractCaller.TaskPayload,
	signature []byte,
) (*types.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	cc.logger.Sugar().Infow("submitting task response",
		zap.Uint32("taskIndex", taskIndex),
		zap.String("taskName", task.Name),
		zap.Uint32("taskCreatedBlock", task.TaskCreatedBlock),
	)

	tx, err := cc.serviceManager.RespondToTask(noSendTxOpts, HelloWorldServiceManager.IHelloWorldServiceManagerTask{
		Name:             task.Name,
		TaskCreatedBlock: task.TaskCreatedBlock,
	}, taskIndex, signature)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to create respondToTask transaction: %w", err))
	}

	return cc.signAndSendTransaction(ctx, tx, "RespondToTask")
}

func (cc *ContractCaller) SubmitPasteValidation(
	ctx context.Context,
	pasteId *big.Int,
	isValid bool,
	reason string,
	signature []byte,
) (*types.Receipt, error) {
	if pasteId == nil {
		return nil, fmt.Errorf("%w: paste id is required", contractCaller.ErrTransport)
	}
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	cc.logger.Sugar().Infow("submitting paste validation",
		zap.String("pasteId", pasteId.String()),
		zap.Bool("isValid", isValid),
		zap.String("reason", reason),
	)

	tx, err := cc.serviceManager.ValidatePaste(noSendTxOpts, pasteId, isValid, reason, signature)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to create validatePaste transaction: %w", err))
	}

	return cc.signAndSendTransaction(ctx, tx, "ValidatePaste")
}

func (cc *ContractCaller) CreateNewTask(ctx context.Context, name string) (*types.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := cc.serviceManager.CreateNewTask(noSendTxOpts, name)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to create createNewTask transaction: %w", err))
	}

	return cc.signAndSendTransaction(ctx, tx, "CreateNewTask")
}

func (cc *ContractCaller) CreatePaste(ctx context.Context, content string) (*types.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := cc.serviceManager.CreatePaste(noSendTxOpts, content)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to create createPaste transaction: %w", err))
	}

	return cc.signAndSendTransaction(ctx, tx, "CreatePaste")
}

func (cc *ContractCaller) GetPaste(ctx context.Context, pasteId *big.Int) (*contractCaller.Paste, error) {
	p, err := cc.serviceManager.GetPaste(&bind.CallOpts{Context: ctx}, pasteId)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to get paste %s: %w", pasteId.String(), err))
	}
	return &contractCaller.Paste{
		PasteId:          p.PasteId,
		Creator:          p.Creator,
		Content:          p.Content,
		Timestamp:        p.Timestamp,
		IsValidated:      p.IsValidated,
		ValidationsCount: p.ValidationsCount,
		IsPublished:      p.IsPublished,
	}, nil
}

func (cc *ContractCaller) buildTransactionOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if cc.signer == nil {
		return nil, fmt.Errorf("%w: no transaction signer configured", contractCaller.ErrTransport)
	}
	opts, err := cc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to build transaction options: %w", err))
	}
	return opts, nil
}

func (cc *ContractCaller) signAndSendTransaction(ctx context.Context, tx *types.Transaction, operation string) (*types.Receipt, error) {
	receipt, err := cc.signer.SignAndSendTransaction(ctx, tx)
	if err != nil {
		cc.logger.Sugar().Errorw("transaction failed",
			zap.String("operation", operation),
			zap.String("contractAddress", cc.contractAddress.Hex()),
			zap.Error(err),
		)
		return receipt, classify(fmt.Errorf("%s: %w", operation, err))
	}
	cc.logger.Sugar().Infow("transaction mined",
		zap.String("operation", operation),
		zap.String("transactionHash", receipt.TxHash.Hex()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
	)
	return receipt, nil
}

// classify tags err with contractCaller.ErrReverted or contractCaller.ErrTransport.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if transactionSigner.IsRevertError(err) {
		return fmt.Errorf("%w: %w", contractCaller.ErrReverted, err)
	}
	return fmt.Errorf("%w: %w", contractCaller.ErrTransport, err)
}
