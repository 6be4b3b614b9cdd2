package contractCaller

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrReverted means the contract rejected the call. Retrying the same call will not help.
	ErrReverted = errors.New("contract call reverted")

	// ErrTransport covers every other submission failure: RPC, signing, timeouts.
	ErrTransport = errors.New("contract call transport failure")
)

type TaskPayload struct {
	Name             string
	TaskCreatedBlock uint32
}

type Paste struct {
	PasteId          *big.Int
	Creator          common.Address
	Content          string
	Timestamp        *big.Int
	IsValidated      bool
	ValidationsCount *big.Int
	IsPublished      bool
}

type IContractCaller interface {
	SubmitTaskResponse(ctx context.Context, taskIndex uint32, task TaskPayload, signature []byte) (*types.Receipt, error)

	SubmitPasteValidation(ctx context.Context, pasteId *big.Int, isValid bool, reason string, signature []byte) (*types.Receipt, error)

	CreateNewTask(ctx context.Context, name string) (*types.Receipt, error)

	CreatePaste(ctx context.Context, content string) (*types.Receipt, error)

	GetPaste(ctx context.Context, pasteId *big.Int) (*Paste, error)
}

// IsRetryable reports whether a submission error may succeed if attempted again.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTransport) && !errors.Is(err, ErrReverted)
}
