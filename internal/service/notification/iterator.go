package notification

import (
	"context"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// userListIterator replaces population paging when a request names its users.
type userListIterator struct {
	ids []string
	pos int
}

func newUserListIterator(ids []string) *userListIterator {
	return &userListIterator{ids: ids}
}

func (it *userListIterator) Next(_ context.Context) (domain.AccountSummary, error) {
	if it.pos >= len(it.ids) {
		return domain.AccountSummary{}, domain.ErrIterationDone
	}
	id := it.ids[it.pos]
	it.pos++
	return domain.AccountSummary{ID: id}, nil
}
