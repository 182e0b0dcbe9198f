package taskqueue

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BatchTask is the body POSTed back to the batch endpoint.
type BatchTask struct {
	StudyID  string   `json:"studyId"`
	Date     string   `json:"date"`
	Tag      string   `json:"tag,omitempty"`
	UserList []string `json:"userList"`

	ScheduleAt time.Time `json:"-"`
}

var taskIDUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// TaskID derives a queue-safe id so the same study, date and tag is only
// enqueued once. User-list runs, including empty lists, are never deduplicated.
func (t *BatchTask) TaskID() string {
	if t.UserList != nil {
		return ""
	}
	parts := []string{"batch", t.StudyID, t.Date}
	if t.Tag != "" {
		parts = append(parts, t.Tag)
	}
	id := taskIDUnsafe.ReplaceAllString(strings.Join(parts, "-"), "_")
	if len(id) > 500 {
		id = id[:500]
	}
	return id
}

func (t *BatchTask) String() string {
	return fmt.Sprintf("%s/%s/%s", t.StudyID, t.Date, t.Tag)
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	URL     string            `json:"url,omitempty"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
