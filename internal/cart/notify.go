package cart

// Notifier is the sink for user-facing state-change feedback ("item added
// to cart!"). The engine calls into it but owns no UI concern: rendering,
// auto-dismissal, and the like belong to the implementation.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(string) {}
