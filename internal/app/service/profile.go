package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const maxPhoneLen = 32

// ProfileService keeps the personal details stored on users/{uid}.
type ProfileService struct {
	store  Storage
	logger *zap.Logger
	now    func() time.Time
}

func NewProfileService(store Storage, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the user's profile. A user without a document has an empty
// profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (models.Profile, error) {
	doc, err := s.store.GetDocument(ctx, storage.UserDoc(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return models.Profile{}, nil
	}
	if err != nil {
		return models.Profile{}, err
	}

	p := models.Profile{
		Name:   doc.String("name"),
		School: doc.String("school"),
		City:   doc.String("city"),
		Phone:  doc.String("phone"),
		Bio:    doc.String("bio"),
	}
	if t, ok := timeField(doc, "updatedAt"); ok {
		p.UpdatedAt = t
	}
	return p, nil
}

// Save trims every field, cleans the phone number and merges the result
// into the user document, leaving bookmarks and fridges untouched.
func (s *ProfileService) Save(ctx context.Context, userID string, p models.Profile) (models.Profile, error) {
	saved := models.Profile{
		Name:      strings.TrimSpace(p.Name),
		School:    strings.TrimSpace(p.School),
		City:      strings.TrimSpace(p.City),
		Phone:     SanitizePhone(strings.TrimSpace(p.Phone)),
		Bio:       strings.TrimSpace(p.Bio),
		UpdatedAt: s.now().UTC(),
	}

	err := s.store.SetFields(ctx, storage.UserDoc(userID), map[string]any{
		"name":      saved.Name,
		"school":    saved.School,
		"city":      saved.City,
		"phone":     saved.Phone,
		"bio":       saved.Bio,
		"updatedAt": saved.UpdatedAt,
	})
	if err != nil {
		return models.Profile{}, err
	}

	s.logger.Info("profile saved", zap.String("user", userID))
	return saved, nil
}

// SanitizePhone keeps digits, '+', '-' and whitespace, up to 32 of them.
func SanitizePhone(phone string) string {
	var b strings.Builder
	n := 0
	for _, r := range phone {
		if n == maxPhoneLen {
			break
		}
		if (r >= '0' && r <= '9') || r == '+' || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}
