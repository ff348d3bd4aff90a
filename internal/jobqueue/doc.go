// Package jobqueue provides a capacity-bounded job queue serviced by a fixed
// pool of workers.
//
// Producers reserve a job id with Setup and Submit the Job, blocking while the
// queue is full. Workers claim Jobs in FIFO order, hand them to the Executor
// registered for the Job's Category and report the terminal outcome to the
// submitter through a Notifier.
//
// A Manager owns the queue, the id allocator and the worker pool.
package jobqueue
