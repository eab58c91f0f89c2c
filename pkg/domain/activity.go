package domain

import "time"

// Activity is a sub-item of a to-do item.
type Activity struct {
	ActivityID  int       `json:"activityId"`
	TodoID      int       `json:"todoId"`
	Title       string    `json:"title"`
	CreatedDate time.Time `json:"createdDate"`
	IsCompleted bool      `json:"isCompleted"`
	Detail      *string   `json:"detail"`
	Priority    *string   `json:"priority"`
}

// CreateActivity is the payload for creating an activity under a to-do item.
type CreateActivity struct {
	TodoID   int     `json:"todoId"`
	Title    string  `json:"title"`
	Detail   *string `json:"detail"`
	Priority *string `json:"priority"`
}

// UpdateActivity is the payload for updating an activity.
type UpdateActivity struct {
	Title       string  `json:"title"`
	IsCompleted bool    `json:"isCompleted"`
	Detail      *string `json:"detail"`
	Priority    *string `json:"priority"`
}
