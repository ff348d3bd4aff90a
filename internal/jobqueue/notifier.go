package jobqueue

// Notification reports the terminal outcome of a Job to its submitter.
type Notification struct {
	JobID     int32     `json:"job_id"`
	Submitter string    `json:"submitter"`
	Succeeded bool      `json:"succeeded"`
	ErrorCode ErrorCode `json:"error_code"`
	Message   string    `json:"message,omitempty"`
}

// Notifier delivers Notifications. Delivery is best effort: Deliver must not
// block waiting for the submitter and must not retry. A Notification for a
// submitter that can't be reached is dropped.
type Notifier interface {
	Deliver(n Notification)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Deliver(n Notification) {
	f(n)
}

type discardNotifier struct{}

func (discardNotifier) Deliver(Notification) {}

// DiscardNotifier drops every Notification.
var DiscardNotifier Notifier = discardNotifier{}
