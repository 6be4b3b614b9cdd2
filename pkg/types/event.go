package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type EventKind string

const (
	EventKind_TaskCreated  EventKind = "TaskCreated"
	EventKind_PasteCreated EventKind = "PasteCreated"
)

// EventMeta locates the log an event was decoded from.
type EventMeta struct {
	BlockNumber     uint64
	TransactionHash common.Hash
	LogIndex        uint
}

// Key uniquely identifies the source log on a given chain.
func (em EventMeta) Key() string {
	return fmt.Sprintf("%s:%d", em.TransactionHash.Hex(), em.LogIndex)
}

// DomainEvent is implemented by TaskCreatedEvent and PasteCreatedEvent only.
type DomainEvent interface {
	Kind() EventKind
	Meta() EventMeta
	isDomainEvent()
}

type TaskCreatedEvent struct {
	EventMeta
	TaskIndex        uint32
	TaskCreatedBlock uint32
	Name             string
}

func (e *TaskCreatedEvent) Kind() EventKind { return EventKind_TaskCreated }
func (e *TaskCreatedEvent) Meta() EventMeta { return e.EventMeta }
func (e *TaskCreatedEvent) isDomainEvent()  {}

type PasteCreatedEvent struct {
	EventMeta
	Id        *big.Int
	Creator   common.Address
	Content   string
	Timestamp *big.Int
}

func (e *PasteCreatedEvent) Kind() EventKind { return EventKind_PasteCreated }
func (e *PasteCreatedEvent) Meta() EventMeta { return e.EventMeta }
func (e *PasteCreatedEvent) isDomainEvent()  {}
