package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notification shown in the status bar.
// A newer notification replaces the previous one.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Clear removes the notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification being shown, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
