package chainPoller

// BlockCursor tracks the next block height to scan. It only moves forward.
type BlockCursor struct {
	next uint64
	// maxRange caps the number of blocks returned by NextRange. Zero means unbounded. The
	// boundary block is rescanned after Advance, so a cap below 2 is raised to 2.
	maxRange uint64
}

func NewBlockCursor(start uint64, maxRange uint64) *BlockCursor {
	return &BlockCursor{
		next:     start,
		maxRange: maxRange,
	}
}

// NewBlockCursorFromTip starts lookback blocks behind tip, saturating at genesis.
func NewBlockCursorFromTip(tip uint64, lookback uint64, maxRange uint64) *BlockCursor {
	start := uint64(0)
	if tip > lookback {
		start = tip - lookback
	}
	return NewBlockCursor(start, maxRange)
}

func (bc *BlockCursor) Current() uint64 {
	return bc.next
}

// NextRange returns the inclusive range [from, to] to scan given the chain tip. When the tip
// has not moved past the cursor it returns ok=false.
func (bc *BlockCursor) NextRange(tip uint64) (from uint64, to uint64, ok bool) {
	if tip <= bc.next {
		return 0, 0, false
	}
	from = bc.next
	to = tip
	if bc.maxRange > 0 {
		span := max(bc.maxRange, 2) - 1
		if to-from > span {
			to = from + span
		}
	}
	return from, to, true
}

// Advance moves the cursor to height. Heights below the current cursor are ignored.
func (bc *BlockCursor) Advance(height uint64) {
	if height > bc.next {
		bc.next = height
	}
}
