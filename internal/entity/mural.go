package entity

import (
	"errors"
	"strings"
	"time"
)

type MuralPost struct {
	ID          string
	AuthorName  string
	AuthorEmail string
	Text        string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewMuralPost(authorName, authorEmail, text, imageURL string) (*MuralPost, error) {
	if strings.TrimSpace(authorEmail) == "" {
		return nil, errors.New("mural post author email cannot be empty")
	}
	if strings.TrimSpace(text) == "" && imageURL == "" {
		return nil, errors.New("mural post must have text or an image")
	}
	now := time.Now().UTC()
	return &MuralPost{
		AuthorName:  authorName,
		AuthorEmail: strings.ToLower(strings.TrimSpace(authorEmail)),
		Text:        text,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

type Comment struct {
	ID          string
	PostID      string
	AuthorName  string
	AuthorEmail string
	Text        string
	CreatedAt   time.Time
}

func NewComment(postID, authorName, authorEmail, text string) (*Comment, error) {
	if postID == "" {
		return nil, errors.New("comment post ID cannot be empty")
	}
	if strings.TrimSpace(authorEmail) == "" {
		return nil, errors.New("comment author email cannot be empty")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("comment text cannot be empty")
	}
	return &Comment{
		PostID:      postID,
		AuthorName:  authorName,
		AuthorEmail: strings.ToLower(strings.TrimSpace(authorEmail)),
		Text:        text,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
