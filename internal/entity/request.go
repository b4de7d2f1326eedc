package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type RequestKind string

const (
	KindInterest        RequestKind = "interest"
	KindVisit           RequestKind = "visit"
	KindEventSuggestion RequestKind = "event_suggestion"
	KindAbuseReport     RequestKind = "abuse_report"
	KindLostPet         RequestKind = "lost_pet"
	KindDirectContact   RequestKind = "direct_contact"
	KindGarageApproval  RequestKind = "garage_approval"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestResponded RequestStatus = "responded"
	RequestArchived  RequestStatus = "archived"
)

// VisitDetails carries the fields that only exist for visit-scheduling
// requests.
type VisitDetails struct {
	Date string `bson:"date"`
	Time string `bson:"time"`
}

// Request is one unit of inbound correspondence, regardless of which surface
// submitted it. Kind-specific payloads live in their own tagged fields
// instead of a flat optional-everything record: VisitDetails is set only for
// visit requests, RelatedID only for garage_approval requests (it points at
// the garage item awaiting a decision).
type Request struct {
	ID           string        `bson:"_id,omitempty"`
	Kind         RequestKind   `bson:"kind"`
	SubjectRef   string        `bson:"subject_ref"`
	SubjectName  string        `bson:"subject_name"`
	SubjectImage string        `bson:"subject_image,omitempty"`
	ActorName    string        `bson:"actor_name"`
	ActorEmail   string        `bson:"actor_email"`
	Message      string        `bson:"message"`
	Status       RequestStatus `bson:"status"`
	Visit        *VisitDetails `bson:"visit,omitempty"`
	RelatedID    string        `bson:"related_id,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

func validKind(k RequestKind) bool {
	switch k {
	case KindInterest, KindVisit, KindEventSuggestion, KindAbuseReport,
		KindLostPet, KindDirectContact, KindGarageApproval:
		return true
	}
	return false
}

func NewRequest(kind RequestKind, subjectRef, subjectName, subjectImage, actorName, actorEmail, message string) (*Request, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("unknown request kind %q", kind)
	}
	if strings.TrimSpace(actorEmail) == "" {
		return nil, errors.New("request actor email cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("request message cannot be empty")
	}
	now := time.Now().UTC()
	return &Request{
		Kind:         kind,
		SubjectRef:   subjectRef,
		SubjectName:  subjectName,
		SubjectImage: subjectImage,
		ActorName:    actorName,
		ActorEmail:   strings.ToLower(strings.TrimSpace(actorEmail)),
		Message:      message,
		Status:       RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ErrTerminalStatus is returned when a transition would leave a terminal
// state for a different one.
var ErrTerminalStatus = errors.New("request already resolved")

// Transition applies the request lifecycle: pending -> {responded, archived}.
// Re-applying the current status is an idempotent no-op; any other move out
// of a terminal state is rejected.
func (r *Request) Transition(newStatus RequestStatus) error {
	if newStatus != RequestResponded && newStatus != RequestArchived {
		return fmt.Errorf("invalid target status %q", newStatus)
	}
	if r.Status == newStatus {
		return nil
	}
	if r.Status != RequestPending {
		return ErrTerminalStatus
	}
	r.Status = newStatus
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Request) IsResolved() bool {
	return r.Status == RequestResponded || r.Status == RequestArchived
}
