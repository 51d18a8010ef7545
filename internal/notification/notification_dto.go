package notification

// CreateNotificationInput dipakai oleh consumer, tidak diekspos lewat HTTP.
type CreateNotificationInput struct {
	EmployeeID string
	Kind       string
	SourceID   string
	Title      string
	Message    string
}

type ListNotificationsFilter struct {
	UnreadOnly bool `form:"unread"`
	Page       int  `form:"-"`
	PageSize   int  `form:"-"`
}

type NotificationResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	IsRead     bool    `json:"is_read"`
	ReadAt     *string `json:"read_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
