package studyplatform

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type accountSummaryIterator struct {
	client  *Client
	studyID string
	offset  int
	total   int
	buf     []domain.AccountSummary
	pos     int
	done    bool
}

func newAccountSummaryIterator(client *Client, studyID string) *accountSummaryIterator {
	return &accountSummaryIterator{
		client:  client,
		studyID: studyID,
		total:   -1,
	}
}

// Next pages by offset. The offset only moves after a page is fetched, so a
// failed fetch is retried on the following call.
func (it *accountSummaryIterator) Next(ctx context.Context) (domain.AccountSummary, error) {
	if it.pos < len(it.buf) {
		s := it.buf[it.pos]
		it.pos++
		return s, nil
	}
	if it.done || (it.total >= 0 && it.offset >= it.total) {
		return domain.AccountSummary{}, domain.ErrIterationDone
	}

	page, err := it.client.fetchAccountSummaries(ctx, it.studyID, it.offset)
	if err != nil {
		return domain.AccountSummary{}, err
	}
	if len(page.Items) == 0 {
		it.done = true
		return domain.AccountSummary{}, domain.ErrIterationDone
	}

	it.buf = page.Items
	it.pos = 1
	it.offset += len(page.Items)
	if page.Total > 0 {
		it.total = page.Total
	}
	return it.buf[0], nil
}

type scheduledActivityIterator struct {
	client    *Client
	studyID   string
	userID    string
	taskID    string
	start     time.Time
	end       time.Time
	offsetKey string
	hasNext   bool
	buf       []domain.ScheduledActivity
	pos       int
}

func newScheduledActivityIterator(client *Client, studyID, userID, taskID string, start, end time.Time) *scheduledActivityIterator {
	return &scheduledActivityIterator{
		client:  client,
		studyID: studyID,
		userID:  userID,
		taskID:  taskID,
		start:   start,
		end:     end,
		hasNext: true,
	}
}

func (it *scheduledActivityIterator) Next(ctx context.Context) (domain.ScheduledActivity, error) {
	for it.pos >= len(it.buf) {
		if !it.hasNext {
			return domain.ScheduledActivity{}, domain.ErrIterationDone
		}

		page, err := it.client.fetchTaskHistory(ctx, it.studyID, it.userID, it.taskID, it.start, it.end, it.offsetKey)
		if err != nil {
			return domain.ScheduledActivity{}, err
		}

		it.buf = page.Items
		it.pos = 0
		it.offsetKey = page.NextPageOffsetKey
		it.hasNext = page.HasNext && page.NextPageOffsetKey != ""
	}

	a := it.buf[it.pos]
	it.pos++
	return a, nil
}
