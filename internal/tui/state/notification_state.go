package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification is a single user-facing message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the notifications shown in the status bar.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification with the given level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns the current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether there is anything to show.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recent notification, or nil when empty.
func (s *NotificationState) Latest() *Notification {
	if len(s.notifications) == 0 {
		return nil
	}
	return &s.notifications[len(s.notifications)-1]
}
