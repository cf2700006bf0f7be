package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"techfest/pkg/logger"
)

// ErrQueueFull 任务队列已满
var ErrQueueFull = errors.New("task queue is full")

// ErrStopped 工作器已停止
var ErrStopped = errors.New("worker stopped")

// Task 表示一个异步任务
type Task struct {
	ID       string
	Handler  func(ctx context.Context) error
	Timeout  time.Duration
	RetryMax int
}

// Worker 异步任务处理器
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup
	mu        sync.RWMutex
	stopped   bool
	backoff   time.Duration
}

// NewWorker 创建一个新的工作器
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
		backoff:   time.Second,
	}
}

// Start 启动 numWorkers 个工作协程
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTask()
	}
}

// Stop 停止接收任务并等待队列中的任务执行完毕
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.taskQueue)
	w.mu.Unlock()

	w.wg.Wait()
}

// Submit 将任务加入队列，队列已满时不阻塞直接返回 ErrQueueFull
func (w *Worker) Submit(task Task) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task_%d", time.Now().UnixNano())
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrStopped
	}

	select {
	case w.taskQueue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// processTask 处理任务的工作循环
func (w *Worker) processTask() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

// executeTask 执行单个任务，失败时按尝试次数线性退避重试
func (w *Worker) executeTask(task Task) {
	start := time.Now()

	var err error
	for attempt := 0; attempt <= task.RetryMax; attempt++ {
		if attempt > 0 {
			w.logger.Info("Retrying task", "task_id", task.ID, "attempt", attempt)
			time.Sleep(w.backoff * time.Duration(attempt))
		}

		err = w.runOnce(task)
		if err == nil {
			break
		}

		w.logger.Error("Task execution failed", "task_id", task.ID, "attempt", attempt, "error", err)
	}

	if err != nil {
		w.logger.Error("Async task failed", "task_id", task.ID, "error", err)
		return
	}
	w.logger.Info("Async task completed successfully", "task_id", task.ID, "duration", time.Since(start))
}

func (w *Worker) runOnce(task Task) (err error) {
	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task.Handler(ctx)
}
