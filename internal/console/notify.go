package console

import (
	"fmt"

	"github.com/asaskevich/EventBus"
)

// ToastLevel is the severity of an operator notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
	// ToastLoading marks an operation in progress; the publisher is
	// expected to follow up with a terminal toast.
	ToastLoading
)

func (l ToastLevel) String() string {
	switch l {
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	case ToastLoading:
		return "loading"
	default:
		return "info"
	}
}

// Toast is a single non-blocking notification.
type Toast struct {
	Level ToastLevel
	Text  string
}

const toastTopic = "console:toast"

// Notifier fans operator notifications out to subscribers over an
// event bus. The orchestrator publishes; the view subscribes. Nothing
// here blocks the publishing operation.
type Notifier struct {
	bus EventBus.Bus
}

func NewNotifier() *Notifier {
	return &Notifier{bus: EventBus.New()}
}

// Publish emits a toast to all subscribers.
func (n *Notifier) Publish(level ToastLevel, format string, args ...interface{}) {
	n.bus.Publish(toastTopic, Toast{Level: level, Text: fmt.Sprintf(format, args...)})
}

// Subscribe registers fn for every subsequent toast.
func (n *Notifier) Subscribe(fn func(Toast)) error {
	return n.bus.Subscribe(toastTopic, fn)
}

// Unsubscribe removes a previously registered fn.
func (n *Notifier) Unsubscribe(fn func(Toast)) error {
	return n.bus.Unsubscribe(toastTopic, fn)
}
