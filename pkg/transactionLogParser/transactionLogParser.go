package transactionLogParser

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contracts/HelloWorldServiceManager"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"go.uber.org/zap"
)

const (
	EventName_NewTaskCreated = "NewTaskCreated"
	EventName_PasteCreated   = "PasteCreated"
)

// ErrMalformedLog is returned when a log carries a known event signature but its topics or
// data cannot be decoded into that event.
var ErrMalformedLog = errors.New("malformed log")

// TransactionLogParser decodes raw logs emitted by the service manager contract into
// domain events using the contract ABI.
type TransactionLogParser struct {
	abi             *abi.ABI
	contractAddress common.Address
	logger          *zap.Logger
}

// NewTransactionLogParser creates a parser for logs emitted by contractAddress using the
// HelloWorldServiceManager ABI.
func NewTransactionLogParser(contractAddress common.Address, logger *zap.Logger) (*TransactionLogParser, error) {
	parsed, err := HelloWorldServiceManager.HelloWorldServiceManagerMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load HelloWorldServiceManager ABI")
	}
	return NewTransactionLogParserWithAbi(parsed, contractAddress, logger), nil
}

func NewTransactionLogParserWithAbi(a *abi.ABI, contractAddress common.Address, logger *zap.Logger) *TransactionLogParser {
	return &TransactionLogParser{
		abi:             a,
		contractAddress: contractAddress,
		logger:          logger,
	}
}

// DecodeLog returns the domain event carried by lg.
//
// Logs that are not from the configured contract, have no topics, or carry a topic that is
// not a recognized event yield (nil, nil). A recognized event that cannot be decoded yields
// an error wrapping ErrMalformedLog.
func (tlp *TransactionLogParser) DecodeLog(lg *ethereumTypes.Log) (types.DomainEvent, error) {
	if lg == nil {
		return nil, nil
	}
	if tlp.contractAddress != (common.Address{}) && lg.Address != tlp.contractAddress {
		tlp.logger.Sugar().Debugw("Ignoring log from unrelated address",
			zap.String("address", lg.Address.Hex()),
			zap.String("transactionHash", lg.TxHash.Hex()),
		)
		return nil, nil
	}
	if tlp.abi == nil {
		return nil, errors.New("no ABI provided for decoding log")
	}
	if len(lg.Topics) == 0 {
		return nil, nil
	}

	event, err := tlp.abi.EventByID(lg.Topics[0])
	if err != nil {
		tlp.logger.Sugar().Debugw(fmt.Sprintf("No event found for topic '%s'", lg.Topics[0].Hex()))
		return nil, nil
	}

	meta := types.EventMeta{
		BlockNumber:     lg.BlockNumber,
		TransactionHash: lg.TxHash,
		LogIndex:        lg.Index,
	}

	indexed, err := tlp.parseIndexedArguments(event, lg.Topics[1:])
	if err != nil {
		return nil, tlp.malformed(lg, event, err)
	}
	values, err := event.Inputs.NonIndexed().Unpack(lg.Data)
	if err != nil {
		return nil, tlp.malformed(lg, event, err)
	}

	var decoded types.DomainEvent
	switch event.Name {
	case EventName_NewTaskCreated:
		decoded, err = decodeTaskCreated(meta, indexed, values)
	case EventName_PasteCreated:
		decoded, err = decodePasteCreated(meta, indexed, values)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, tlp.malformed(lg, event, err)
	}
	return decoded, nil
}

func (tlp *TransactionLogParser) parseIndexedArguments(event *abi.Event, topics []common.Hash) (map[string]interface{}, error) {
	var indexedArgs abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexedArgs = append(indexedArgs, input)
		}
	}
	if len(topics) != len(indexedArgs) {
		return nil, fmt.Errorf("expected %d indexed topics, got %d", len(indexedArgs), len(topics))
	}

	out := make(map[string]interface{}, len(indexedArgs))
	if err := abi.ParseTopicsIntoMap(out, indexedArgs, topics); err != nil {
		return nil, err
	}
	return out, nil
}

func (tlp *TransactionLogParser) malformed(lg *ethereumTypes.Log, event *abi.Event, err error) error {
	tlp.logger.Sugar().Errorw("Failed to decode log",
		zap.Error(err),
		zap.String("eventName", event.Name),
		zap.String("address", lg.Address.Hex()),
		zap.String("transactionHash", lg.TxHash.Hex()),
		zap.Uint("logIndex", lg.Index),
	)
	return errors.Wrapf(ErrMalformedLog, "%s in tx %s log %d: %v", event.Name, lg.TxHash.Hex(), lg.Index, err)
}

func decodeTaskCreated(meta types.EventMeta, indexed map[string]interface{}, values []interface{}) (*types.TaskCreatedEvent, error) {
	taskIndex, ok := indexed["taskIndex"].(uint32)
	if !ok {
		return nil, fmt.Errorf("taskIndex has unexpected type %T", indexed["taskIndex"])
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("expected 1 data value, got %d", len(values))
	}

	task, ok := abi.ConvertType(values[0], new(HelloWorldServiceManager.IHelloWorldServiceManagerTask)).(*HelloWorldServiceManager.IHelloWorldServiceManagerTask)
	if !ok {
		return nil, fmt.Errorf("task has unexpected type %T", values[0])
	}

	return &types.TaskCreatedEvent{
		EventMeta:        meta,
		TaskIndex:        taskIndex,
		TaskCreatedBlock: task.TaskCreatedBlock,
		Name:             task.Name,
	}, nil
}

func decodePasteCreated(meta types.EventMeta, indexed map[string]interface{}, values []interface{}) (*types.PasteCreatedEvent, error) {
	id, ok := indexed["id"].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("id has unexpected type %T", indexed["id"])
	}
	creator, ok := indexed["creator"].(common.Address)
	if !ok {
		return nil, fmt.Errorf("creator has unexpected type %T", indexed["creator"])
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("expected 2 data values, got %d", len(values))
	}
	content, ok := values[0].(string)
	if !ok {
		return nil, fmt.Errorf("content has unexpected type %T", values[0])
	}
	timestamp, ok := values[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("timestamp has unexpected type %T", values[1])
	}

	return &types.PasteCreatedEvent{
		EventMeta: meta,
		Id:        id,
		Creator:   creator,
		Content:   content,
		Timestamp: timestamp,
	}, nil
}
