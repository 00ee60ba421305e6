package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menurank/recommend-svc/internal/domain"

	"github.com/google/uuid"
)

// SessionService runs shared dining sessions: one diner opens a session for a
// venue and co-diners add the dishes they picked.
type SessionService struct {
	store     SessionStore
	qr        QRGenerator
	publicURL string
	now       func() time.Time
}

func NewSessionService(store SessionStore, qr QRGenerator, publicURL string) *SessionService {
	return &SessionService{
		store:     store,
		qr:        qr,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context, venue domain.Venue, hostName string) (*domain.DiningSession, error) {
	if venue.Ref() == "" {
		return nil, domain.ErrVenueRequired
	}
	session := &domain.DiningSession{
		ID:         uuid.New().String(),
		Venue:      venue,
		HostName:   strings.TrimSpace(hostName),
		Selections: []domain.FriendSelection{},
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*domain.DiningSession, error) {
	return s.store.Get(ctx, id)
}

func (s *SessionService) AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error) {
	sel.DishName = strings.TrimSpace(sel.DishName)
	if sel.DishName == "" {
		return nil, domain.ErrDishRequired
	}
	return s.store.AddSelection(ctx, id, sel)
}

// JoinURL is the link encoded in the session's QR code.
func (s *SessionService) JoinURL(id string) string {
	return s.publicURL + "/sessions/" + id
}

func (s *SessionService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(s.JoinURL(id))
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}
