package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/lovely/engine/core"
)

/**
 * @brief Describes a job to be run. OnStart runs on a worker goroutine; the
 * result callbacks run on the goroutine calling JobSystem.Update, which is
 * the one that owns the graphics context.
 */
type JobTask struct {
	/** @brief Data passed to OnStart. */
	InputParams interface{}
	/** @brief Invoked on a worker when the job starts. Required. */
	OnStart func(params interface{}) (interface{}, error)
	/** @brief Invoked with the result of OnStart when it succeeded. Optional. */
	OnComplete func(result interface{})
	/** @brief Invoked with the error of OnStart when it failed. Optional. */
	OnFailure func(err error)
}

type jobResult struct {
	task   JobTask
	result interface{}
	err    error
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	resultsMutex sync.Mutex
	results      []jobResult
	pending      sync.WaitGroup

	// guards closed and the send on jobQueue
	queueMutex sync.RWMutex
	closed     bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrMissingEntryPoint = fmt.Errorf("job submitted without an OnStart function")
var ErrJobSystemClosed = fmt.Errorf("job submitted after the job system was shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				result, err := job.OnStart(job.InputParams)
				if err != nil {
					core.LogError(err.Error())
				}
				js.resultsMutex.Lock()
				js.results = append(js.results, jobResult{task: job, result: result, err: err})
				js.resultsMutex.Unlock()
				js.pending.Done()
			}
		}()
	}
}

/**
 * @brief Shuts the job system down. Queued jobs still run; their callbacks
 * are dropped. Calling it again is a no-op.
 */
func (js *JobSystem) Shutdown() error {
	js.queueMutex.Lock()
	if js.closed {
		js.queueMutex.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.queueMutex.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Updates the job system. Should happen once an update cycle.
 * Dispatches the callbacks of every job finished since the last call.
 *
 * @return The number of callbacks dispatched.
 */
func (js *JobSystem) Update() int {
	js.resultsMutex.Lock()
	results := js.results
	js.results = nil
	js.resultsMutex.Unlock()

	for _, r := range results {
		if r.err != nil {
			if r.task.OnFailure != nil {
				r.task.OnFailure(r.err)
			}
			continue
		}
		if r.task.OnComplete != nil {
			r.task.OnComplete(r.result)
		}
	}
	return len(results)
}

// Wait blocks until every submitted job has finished running OnStart. The
// callbacks still need an Update.
func (js *JobSystem) Wait() {
	js.pending.Wait()
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 * @param jt The description of the job to be executed.
 * @return ErrJobSystemClosed once Shutdown has been called.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	if jt.OnStart == nil {
		return ErrMissingEntryPoint
	}
	js.queueMutex.RLock()
	defer js.queueMutex.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	js.pending.Add(1)
	js.jobQueue <- jt
	return nil
}
