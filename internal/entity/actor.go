package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ActorRole string

const (
	RoleVolunteer ActorRole = "volunteer"
	RolePartner   ActorRole = "partner"
	RoleAdmin     ActorRole = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PartnerProfile is the public-facing business card of a partner actor.
// It is only listed in the partner directory once the actor is approved.
type PartnerProfile struct {
	CompanyName string
	Description string
	Website     string
	LogoURL     string
}

type Actor struct {
	ID             string
	Name           string
	Email          string
	Password       string // bcrypt hash
	Role           ActorRole
	Status         ApprovalStatus
	Balance        int64 // PetCoins, never negative
	PartnerProfile *PartnerProfile
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}

func NewActor(name, email, passwordHash string, role ActorRole, startingBalance int64) (*Actor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("actor name cannot be empty")
	}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return nil, errors.New("actor email is invalid")
	}
	if passwordHash == "" {
		return nil, errors.New("actor password cannot be empty")
	}
	switch role {
	case RoleVolunteer, RolePartner:
	default:
		// Admin accounts are provisioned out of band, never via registration.
		return nil, fmt.Errorf("role %q cannot be self-registered", role)
	}
	if startingBalance < 0 {
		return nil, errors.New("starting balance cannot be negative")
	}
	now := time.Now().UTC()
	return &Actor{
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  passwordHash,
		Role:      role,
		Status:    ApprovalPending,
		Balance:   startingBalance,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}, nil
}

// Resolve moves the actor out of the pending state. Re-applying the same
// decision is a no-op; flipping an already resolved decision requires another
// explicit admin call and is allowed (approved <-> rejected both pass through
// here).
func (a *Actor) Resolve(status ApprovalStatus) error {
	if status != ApprovalApproved && status != ApprovalRejected {
		return fmt.Errorf("invalid approval decision %q", status)
	}
	if a.Status == status {
		return nil
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	a.Version++
	return nil
}

// IsPubliclyVisible reports whether the actor's profile (and partner listing,
// if any) appears on public pages. Admins bypass approval gating.
func (a *Actor) IsPubliclyVisible() bool {
	return a.Role == RoleAdmin || a.Status == ApprovalApproved
}

func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
