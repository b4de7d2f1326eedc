package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type PetMode string

const (
	ModeAdoption    PetMode = "adoption"
	ModeSponsorship PetMode = "sponsorship"
)

type PetListing struct {
	ID          string
	OwnerEmail  string
	Name        string
	Species     string
	Breed       string
	Age         string
	Story       string
	HealthNotes string
	Mode        PetMode
	Status      ApprovalStatus
	Photos      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

func NewPetListing(ownerEmail, name, species, breed, age, story, healthNotes string, mode PetMode) (*PetListing, error) {
	if strings.TrimSpace(ownerEmail) == "" {
		return nil, errors.New("pet listing owner email cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("pet name cannot be empty")
	}
	if strings.TrimSpace(species) == "" {
		return nil, errors.New("pet species cannot be empty")
	}
	if mode != ModeAdoption && mode != ModeSponsorship {
		return nil, fmt.Errorf("invalid pet listing mode %q", mode)
	}
	now := time.Now().UTC()
	return &PetListing{
		OwnerEmail:  strings.ToLower(strings.TrimSpace(ownerEmail)),
		Name:        name,
		Species:     species,
		Breed:       breed,
		Age:         age,
		Story:       story,
		HealthNotes: healthNotes,
		Mode:        mode,
		Status:      ApprovalPending,
		Photos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}, nil
}

func (p *PetListing) Resolve(status ApprovalStatus) error {
	if status != ApprovalApproved && status != ApprovalRejected {
		return errors.New("pet listing decision must be approved or rejected")
	}
	if p.Status == status {
		return nil
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	p.Version++
	return nil
}

func (p *PetListing) AddPhoto(url string) {
	p.Photos = append(p.Photos, url)
	p.UpdatedAt = time.Now().UTC()
}
