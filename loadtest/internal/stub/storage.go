package stub

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// Storage holds seeded participants per study and records every SMS the
// worker asks the platform to send.
type Storage struct {
	mu      sync.RWMutex
	studies map[string]map[string]*ParticipantSeed // studyID -> userID -> seed
	sent    map[string][]SentSMS                   // studyID -> messages
}

func NewStorage() *Storage {
	return &Storage{
		studies: make(map[string]map[string]*ParticipantSeed),
		sent:    make(map[string][]SentSMS),
	}
}

func (s *Storage) Reset(studyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.studies, studyID)
	delete(s.sent, studyID)
}

func (s *Storage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studies = make(map[string]map[string]*ParticipantSeed)
	s.sent = make(map[string][]SentSMS)
}

func (s *Storage) Seed(studyID string, seeds []ParticipantSeed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.studies[studyID] == nil {
		s.studies[studyID] = make(map[string]*ParticipantSeed)
	}
	for i := range seeds {
		seed := seeds[i]
		s.studies[studyID][seed.Participant.ID] = &seed
	}
}

// Accounts returns one page of account ids in id order and the total count.
func (s *Storage) Accounts(studyID string, offset, pageSize int) ([]domain.AccountSummary, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.studies[studyID]))
	for id := range s.studies[studyID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := len(ids)
	if offset >= total {
		return []domain.AccountSummary{}, total
	}
	end := min(offset+pageSize, total)

	page := make([]domain.AccountSummary, 0, end-offset)
	for _, id := range ids[offset:end] {
		page = append(page, domain.AccountSummary{ID: id})
	}
	return page, total
}

func (s *Storage) Participant(studyID, userID string) (*ParticipantSeed, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seed, ok := s.studies[studyID][userID]
	return seed, ok
}

// Activities returns the participant's activities scheduled in [start, end)
// ordered by scheduled time.
func (s *Storage) Activities(studyID, userID string, start, end time.Time) []domain.ScheduledActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seed, ok := s.studies[studyID][userID]
	if !ok {
		return nil
	}

	var out []domain.ScheduledActivity
	for _, a := range seed.Activities {
		if a.ScheduledOn.Before(start) || !a.ScheduledOn.Before(end) {
			continue
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b domain.ScheduledActivity) int {
		return a.ScheduledOn.Compare(b.ScheduledOn)
	})
	return out
}

func (s *Storage) RecordSMS(sms SentSMS) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[sms.StudyID] = append(s.sent[sms.StudyID], sms)
}

func (s *Storage) Sent(studyID string) []SentSMS {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sent[studyID])
}
