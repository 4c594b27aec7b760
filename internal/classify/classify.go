package classify

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oseuis57/web-ecovision/internal/model"
	"github.com/pkg/errors"
)

// ErrRequestNotFound reports an unknown or already discarded
// classification token.
var ErrRequestNotFound = errors.New("classification request not found")

// RequestState is the lifecycle of one classification request.
type RequestState string

const (
	StatePending   RequestState = "pending"
	StateCompleted RequestState = "completed"
	StateCancelled RequestState = "cancelled"
)

// Result is what a caller polls for: pending until the deferred
// completion fires, then the classified pair — unless the request was
// cancelled or superseded first.
type Result struct {
	Token string              `json:"token"`
	State RequestState        `json:"state"`
	Type  model.PollutionType `json:"type,omitempty"`
	Level model.SeverityLevel `json:"level,omitempty"`
}

// Classifier is the pluggable image -> (type, level) strategy. The
// stand-in below draws uniformly at random; a real model satisfies the
// same contract without touching anything else.
type Classifier interface {
	Classify(image []byte) (model.PollutionType, model.SeverityLevel)
}

// RandomClassifier picks a uniformly random type and level, ignoring
// the image.
type RandomClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomClassifier() *RandomClassifier {
	return &RandomClassifier{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *RandomClassifier) Classify(_ []byte) (model.PollutionType, model.SeverityLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	types := model.PollutionTypes()
	levels := model.SeverityLevels()
	return types[c.rng.Intn(len(types))], levels[c.rng.Intn(len(levels))]
}

type request struct {
	state RequestState
	image []byte
	typ   model.PollutionType
	level model.SeverityLevel
}

// Service runs classifications as time-deferred completions. Callers
// never block: Start returns a token immediately, the pair appears in
// Result once the latency window elapses, and a Cancel before that
// suppresses the completion for good. A late completion for a
// cancelled or superseded request is dropped at the stale-token guard
// and never writes anywhere.
type Service struct {
	mu         sync.Mutex
	classifier Classifier
	latency    time.Duration
	requests   map[string]*request
}

func NewService(classifier Classifier, latency time.Duration) *Service {
	return &Service{
		classifier: classifier,
		latency:    latency,
		requests:   make(map[string]*request),
	}
}

// Start registers a captured image for classification and schedules
// its completion. A non-empty supersedes token cancels the flow's
// previous capture first, so at most one classification per flow ever
// lands.
func (s *Service) Start(image []byte, supersedes string) string {
	if supersedes != "" {
		if err := s.Cancel(supersedes); err != nil {
			log.Printf("classify: superseded token %s already gone: %v", supersedes, err)
		}
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.requests[token] = &request{state: StatePending, image: image}
	s.mu.Unlock()

	time.AfterFunc(s.latency, func() { s.complete(token) })
	return token
}

// complete commits the classified pair, unless the request is no
// longer pending (cancelled, superseded, or discarded): then the
// result is silently dropped.
func (s *Service) complete(token string) {
	s.mu.Lock()
	req, ok := s.requests[token]
	if !ok || req.state != StatePending {
		s.mu.Unlock()
		log.Printf("classify: dropping stale result for token %s", token)
		return
	}
	image := req.image
	s.mu.Unlock()

	// Classify outside the lock; the strategy may be slow.
	typ, level := s.classifier.Classify(image)

	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok = s.requests[token]
	if !ok || req.state != StatePending {
		log.Printf("classify: dropping stale result for token %s", token)
		return
	}
	req.state = StateCompleted
	req.typ = typ
	req.level = level
	req.image = nil
}

// Result returns the current state of a request.
func (s *Service) Result(token string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[token]
	if !ok {
		return Result{}, errors.Wrapf(ErrRequestNotFound, "token=%s", token)
	}
	return Result{Token: token, State: req.state, Type: req.typ, Level: req.level}, nil
}

// Cancel suppresses a pending request, e.g. when the user removes the
// photo. Cancelling a completed request discards its result.
func (s *Service) Cancel(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[token]
	if !ok {
		return errors.Wrapf(ErrRequestNotFound, "token=%s", token)
	}
	req.state = StateCancelled
	req.image = nil
	req.typ = ""
	req.level = ""
	return nil
}

// Consume hands a completed classification to the submission flow and
// discards the transient request. A still-pending or cancelled request
// yields no pair.
func (s *Service) Consume(token string) (model.PollutionType, model.SeverityLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[token]
	if !ok {
		return "", "", errors.Wrapf(ErrRequestNotFound, "token=%s", token)
	}
	if req.state != StateCompleted {
		return "", "", errors.Errorf("classification %s is %s, not completed", token, req.state)
	}
	delete(s.requests, token)
	return req.typ, req.level, nil
}
