package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"flowworks-backend/internal/phone"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("inquiry not found")
)

type Notifier interface {
	SendContactNotification(ctx context.Context, inq Inquiry) (string, error)
	SendContactAcknowledgement(ctx context.Context, inq Inquiry) (string, error)
}

type Service struct {
	repo        Repository
	location    *time.Location
	notifier    Notifier
	phoneRegion string
	now         func() time.Time
}

func NewService(repo Repository, location *time.Location, notifier Notifier, phoneRegion string) *Service {
	if location == nil {
		location = time.UTC
	}
	if phoneRegion == "" {
		phoneRegion = phone.DefaultRegion
	}
	return &Service{
		repo:        repo,
		location:    location,
		notifier:    notifier,
		phoneRegion: phoneRegion,
		now:         time.Now,
	}
}

// Submit stores a validated request. The phone number is kept in
// international format when it parses.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, meta Meta) (Inquiry, error) {
	req.Normalize()
	now := s.now().In(s.location)
	inq := Inquiry{
		ID:        primitive.NewObjectID().Hex(),
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Company:   req.Company,
		Phone:     phone.Format(req.Phone, s.phoneRegion),
		Message:   req.Message,
		Interest:  req.Interest,
		Status:    StatusNew,
		SourceIP:  meta.SourceIP,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

// FormatPhone is the display form the contact form applies on blur.
func (s *Service) FormatPhone(raw string) string {
	return phone.Format(raw, s.phoneRegion)
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Email = strings.ToLower(strings.TrimSpace(filter.Email))
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
	}
	return inq, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Inquiry, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Inquiry{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, strings.TrimSpace(id), status, s.now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
	}
	return updated, nil
}

// Notify sends the team notification and the sender acknowledgement. Both
// are attempted even when the first fails.
func (s *Service) Notify(ctx context.Context, inq Inquiry) error {
	return errors.Join(s.NotifyTeam(ctx, inq), s.NotifySender(ctx, inq))
}

func (s *Service) NotifyTeam(ctx context.Context, inq Inquiry) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactNotification(ctx, inq)
	return err
}

func (s *Service) NotifySender(ctx context.Context, inq Inquiry) error {
	if s.notifier == nil || inq.Email == "" {
		return nil
	}
	_, err := s.notifier.SendContactAcknowledgement(ctx, inq)
	return err
}
