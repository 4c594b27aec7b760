package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/oseuis57/web-ecovision/internal/model"
	"github.com/pkg/errors"
)

var (
	// ErrReportNotFound rejects a status update for an id the store has
	// never seen. The store is left unchanged.
	ErrReportNotFound = errors.New("report not found")
	// ErrIncompleteSubmission rejects a draft whose type or level is
	// missing or unknown, i.e. a submission attempted before
	// classification finished.
	ErrIncompleteSubmission = errors.New("incomplete submission")
)

// Store is the authoritative in-memory report set. Reports are kept
// newest-first; submit prepends, so All never re-sorts. Reports are
// never deleted, and only Status is mutable after creation.
type Store struct {
	mu      sync.RWMutex
	reports []model.Report
	lastID  int64
}

func New() *Store {
	return &Store{}
}

// Submit validates a draft and stores it as a new pending report. The
// id is a monotonically unique nanosecond token.
func (s *Store) Submit(draft model.SubmitReportRequest) (model.Report, error) {
	if !draft.Type.Valid() || !draft.Level.Valid() {
		return model.Report{}, errors.Wrapf(ErrIncompleteSubmission,
			"type=%q level=%q", draft.Type, draft.Level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	report := model.Report{
		ID:            s.nextID(now),
		Type:          draft.Type,
		Level:         draft.Level,
		Description:   draft.Description,
		Location:      draft.Location,
		Image:         draft.Image,
		Timestamp:     now,
		Status:        model.StatusPending,
		StatusDisplay: model.StatusPending.DisplayName(),
	}
	s.reports = append([]model.Report{report}, s.reports...)
	return report, nil
}

// UpdateStatus overwrites the status of an existing report. Every
// transition is allowed; the only failure is an unknown id.
func (s *Store) UpdateStatus(id string, status model.Status) (model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = status
			s.reports[i].StatusDisplay = status.DisplayName()
			return s.reports[i], nil
		}
	}
	return model.Report{}, errors.Wrapf(ErrReportNotFound, "id=%s", id)
}

// Get returns the report with the given id.
func (s *Store) Get(id string) (model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			return s.reports[i], nil
		}
	}
	return model.Report{}, errors.Wrapf(ErrReportNotFound, "id=%s", id)
}

// All returns a copy of the report set, newest first.
func (s *Store) All() []model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Types returns the distinct pollution types currently present, in the
// order they are encountered newest-first. The set shrinks and grows
// with the data.
func (s *Store) Types() []model.PollutionType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[model.PollutionType]bool, len(s.reports))
	var types []model.PollutionType
	for i := range s.reports {
		if t := s.reports[i].Type; !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// nextID derives an id from the creation instant, bumping past the
// previous id so two submissions in the same nanosecond never collide.
// Callers must hold s.mu.
func (s *Store) nextID(now time.Time) string {
	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
