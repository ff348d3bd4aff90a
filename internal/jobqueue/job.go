package jobqueue

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Category selects the kind of work a Job performs and therefore the Executor
// it's dispatched to.
type Category int32

const (
	CategoryUndefined Category = iota
	CategoryChecksum
	CategoryCompress
)

var categories = []string{"undefined", "checksum", "compress"}

func (c Category) String() string {
	if !c.known() {
		return categories[CategoryUndefined]
	}

	return categories[c]
}

// Valid returns whether c is a defined Category other than CategoryUndefined.
func (c Category) Valid() bool {
	return c != CategoryUndefined && c.known()
}

func (c Category) known() bool {
	return c >= 0 && int(c) < len(categories)
}

// ParseCategory returns the Category named by s, ignoring case.
func ParseCategory(s string) (Category, error) {
	for i, name := range categories {
		if i > 0 && strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}

	return CategoryUndefined, invalidArgf("unknown category %q", s)
}

// Algorithm selects the digest used by a checksum Job.
type Algorithm int32

const (
	AlgorithmUndefined Algorithm = iota
	AlgorithmMD5
	AlgorithmSHA1
)

var algorithms = []string{"undefined", "md5", "sha1"}

func (a Algorithm) String() string {
	if !a.known() {
		return algorithms[AlgorithmUndefined]
	}

	return algorithms[a]
}

// Valid returns whether a is a defined Algorithm other than
// AlgorithmUndefined.
func (a Algorithm) Valid() bool {
	return a != AlgorithmUndefined && a.known()
}

func (a Algorithm) known() bool {
	return a >= 0 && int(a) < len(algorithms)
}

// ParseAlgorithm returns the Algorithm named by s, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithms {
		if i > 0 && strings.EqualFold(s, name) {
			return Algorithm(i), nil
		}
	}

	return AlgorithmUndefined, invalidArgf("unknown algorithm %q", s)
}

// OpenFlags control how an Executor opens a Job's output.
type OpenFlags uint32

const (
	// OpenExclusive fails the Job if the output already exists. Without it the
	// output is truncated and overwritten.
	OpenExclusive OpenFlags = 1 << iota
)

// Exclusive returns whether OpenExclusive is set.
func (f OpenFlags) Exclusive() bool {
	return f&OpenExclusive != 0
}

// Params are the caller supplied parameters of a Job. Paths are expected to
// have been resolved by the caller.
type Params struct {
	Submitter  string
	Category   Category
	Algorithm  Algorithm
	InputPath  string
	OutputPath string
	Flags      OpenFlags
}

func (p Params) validate() error {
	if !p.Category.Valid() {
		return invalidArgf("invalid category %d", p.Category)
	}

	if !p.Algorithm.Valid() {
		return invalidArgf("invalid algorithm %d", p.Algorithm)
	}

	if p.InputPath == "" {
		return invalidArgf("input path is empty")
	}

	if p.OutputPath == "" {
		return invalidArgf("output path is empty")
	}

	return nil
}

// Job is a single unit of submitted work. The parameters are immutable once
// the Job is created; only its state changes.
type Job struct {
	id        int32
	params    Params
	createdAt time.Time

	state    AtomicJobState
	notified atomic.Bool
}

// NewJob validates params and creates a Job in JobStateNew.
func NewJob(id int32, params Params) (*Job, error) {
	if id <= 0 {
		return nil, invalidArgf("invalid job id %d", id)
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	j := &Job{
		id:        id,
		params:    params,
		createdAt: time.Now(),
	}

	j.state.Store(JobStateNew)

	return j, nil
}

// ID returns the ID of the Job.
func (j *Job) ID() int32 {
	return j.id
}

// Submitter returns the identity the Job's notification is addressed to.
func (j *Job) Submitter() string {
	return j.params.Submitter
}

// Params returns a copy of the Job's parameters.
func (j *Job) Params() Params {
	return j.params
}

// State returns the state of the Job.
func (j *Job) State() JobState {
	return j.state.Load()
}

// CreatedAt returns when the Job was created.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

func (j *Job) String() string {
	return fmt.Sprintf(
		"job[%d] %s/%s %s",
		j.id,
		j.params.Category,
		j.params.Algorithm,
		j.params.InputPath,
	)
}

// markNotified reports whether this call is the first to claim the Job's
// notification.
func (j *Job) markNotified() bool {
	return j.notified.CompareAndSwap(false, true)
}

// JobInfo is a point-in-time view of a queued Job returned by List.
type JobInfo struct {
	ID        int32
	Submitter string
	Category  Category
	Algorithm Algorithm
	InputPath string
	QueuedAt  time.Time
}
