package service

import (
	"errors"
	"time"

	"chequesaathi/internal/domain"

	"gorm.io/gorm"
)

// Publisher receives activity events once a change is committed.
type Publisher interface {
	Publish(evt domain.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.Event) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

func event(typ, resourceID, actorID string, data interface{}) domain.Event {
	return domain.Event{Type: typ, ResourceID: resourceID, ActorID: actorID, Data: data, At: time.Now()}
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	p := Pagination{Total: total, Page: page, Limit: limit}
	if limit > 0 {
		p.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return p
}

// lookupErr turns a missing row into a NotFound naming what was looked up.
func lookupErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(what)
	}
	return err
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// optional normalises an optional text field: blank becomes nil.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
