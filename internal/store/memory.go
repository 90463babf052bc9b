package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/govtec-events/backend/internal/models"
)

// MemStore keeps registrations and users in process memory. It is the
// reference store: a restart loses everything, which is acceptable for the
// event's lifetime. All mutation goes through createRegistration/createUser
// under one mutex, so ID assignment and map insertion are atomic.
type MemStore struct {
	mu                 sync.Mutex
	registrations      map[int64]*models.Registration
	registrationOrder  []int64
	users              map[int64]*models.User
	nextRegistrationID int64
	nextUserID         int64
	validCodes         map[string]struct{}
	logger             *zap.Logger
}

// NewMemStore creates an in-memory store with the given valid codes.
func NewMemStore(codes []string, logger *zap.Logger) *MemStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	valid := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		valid[c] = struct{}{}
	}
	logger.Info("memory store initialized", zap.Strings("valid_codes", codes))
	return &MemStore{
		registrations:      make(map[int64]*models.Registration),
		users:              make(map[int64]*models.User),
		nextRegistrationID: 1,
		nextUserID:         1,
		validCodes:         valid,
		logger:             logger,
	}
}

// CreateRegistration assigns the next ID, fills defaults and stores a copy of
// the record. The counter advances even if nothing downstream succeeds, so an
// ID is never handed out twice.
func (s *MemStore) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg.ID = s.nextRegistrationID
	s.nextRegistrationID++
	reg.CreatedAt = time.Now().UTC()
	if reg.CommunicationMethod == "" {
		reg.CommunicationMethod = models.CommunicationEmail
	}

	stored := *reg
	s.registrations[stored.ID] = &stored
	s.registrationOrder = append(s.registrationOrder, stored.ID)

	s.logger.Info("registration created",
		zap.String("formatted_id", stored.FormattedID()),
		zap.String("first_name", stored.FirstName),
		zap.String("last_name", stored.LastName),
	)
	return nil
}

// GetRegistration returns the record or (nil, nil) when absent.
func (s *MemStore) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.registrations[id]
	if !ok {
		return nil, nil
	}
	copied := *reg
	return &copied, nil
}

// GetAllRegistrations returns all records in creation order.
func (s *MemStore) GetAllRegistrations(ctx context.Context) ([]*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*models.Registration, 0, len(s.registrationOrder))
	for _, id := range s.registrationOrder {
		copied := *s.registrations[id]
		list = append(list, &copied)
	}
	return list, nil
}

// VerifyRegistrationCode checks exact-case membership in the valid-code set.
func (s *MemStore) VerifyRegistrationCode(ctx context.Context, code string) (bool, error) {
	_, ok := s.validCodes[code]
	return ok, nil
}

// CreateUser assigns the next user ID and stores the user. Usernames are
// unique; a duplicate returns ErrUsernameTaken.
func (s *MemStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

// GetUser returns the user or (nil, nil) when absent.
func (s *MemStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// GetUserByUsername returns the user with the username or (nil, nil).
func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}
