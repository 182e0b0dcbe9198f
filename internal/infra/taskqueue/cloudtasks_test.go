//go:build gcloud

package taskqueue

import (
	"testing"
	"time"
)

func TestCloudTasksClient_BuildTask(t *testing.T) {
	c := &CloudTasksClient{
		projectID:  "proj",
		locationID: "asia-northeast1",
		queueID:    "notifications",
		targetURL:  "https://worker/api/v1/notification/batch",
	}
	scheduleAt := time.Date(2018, 5, 3, 18, 0, 0, 0, time.UTC)

	task, err := c.buildTask(&BatchTask{StudyID: "study-1", Date: "2018-05-03", Tag: "nightly", ScheduleAt: scheduleAt}, map[string]string{"Content-Type": "application/json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := task.GetDispatchDeadline().AsDuration(); got != batchDispatchDeadline {
		t.Errorf("dispatch deadline = %v, want %v", got, batchDispatchDeadline)
	}
	if want := "projects/proj/locations/asia-northeast1/queues/notifications/tasks/batch-study-1-2018-05-03-nightly"; task.Name != want {
		t.Errorf("name = %q, want %q", task.Name, want)
	}
	if !task.GetScheduleTime().AsTime().Equal(scheduleAt) {
		t.Errorf("schedule time = %v, want %v", task.GetScheduleTime().AsTime(), scheduleAt)
	}
	if task.GetHttpRequest().GetUrl() != c.targetURL {
		t.Errorf("url = %q", task.GetHttpRequest().GetUrl())
	}
}

func TestCloudTasksClient_BuildTaskUserListIsUnnamed(t *testing.T) {
	c := &CloudTasksClient{projectID: "proj", locationID: "loc", queueID: "q"}

	task, err := c.buildTask(&BatchTask{StudyID: "study-1", Date: "2018-05-03", UserList: []string{}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Name != "" {
		t.Errorf("name = %q, want empty", task.Name)
	}
}
