package export

import "time"

const (
	defaultWorkerCount = 8

	// exportChunkSize caps how many heights one iteration exports;
	// reorgResyncDepth is how far below the resume point each catch-up
	// restarts so rows invalidated by a shallow reorg get rewritten.
	exportChunkSize  int32 = 10_000
	reorgResyncDepth int32 = 6

	sleepDuration          = 5 * time.Second
	idleSleepDuration      = 30 * time.Second
	postBatchSleepDuration = 1 * time.Second

	rowBatcherCapacity      = 1000
	rowBatcherFlushInterval = 5 * time.Second
	rowBatcherRPS           = 20
)
