package store

import (
	"log"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// Users returns a snapshot of the user list, passwords included; callers
// facing the API sanitize before returning.
func (s *Store) Users() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindUserByUsername returns the user with the given username, or nil
func (s *Store) FindUserByUsername(username string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user
		}
	}
	return nil
}

// AddUserInput represents the create user input
type AddUserInput struct {
	Username    string
	Password    string
	Role        enum.UserRole
	Name        string
	Phone       string
	Address     string
	Permissions []string
}

// AddUser appends a user to the credential list
func (s *Store) AddUser(input AddUserInput) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := entity.User{
		ID:          uuid.New(),
		Username:    input.Username,
		Password:    input.Password,
		Role:        input.Role,
		Name:        input.Name,
		Phone:       input.Phone,
		Address:     input.Address,
		StartDate:   s.now(),
		Permissions: input.Permissions,
	}
	if user.Permissions == nil {
		user.Permissions = []string{}
	}
	s.users = append(s.users, user)
	s.persist(storage.KeyUsers, s.users)
	return user
}

// UpdateUserInput represents a partial user update
type UpdateUserInput struct {
	Password    *string
	Role        *enum.UserRole
	Name        *string
	Phone       *string
	Address     *string
	Permissions []string
}

// UpdateUser merges the input into the user. Unknown ids are a no-op.
func (s *Store) UpdateUser(id uuid.UUID, input UpdateUserInput) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.users {
		if s.users[idx].ID != id {
			continue
		}
		u := &s.users[idx]
		if input.Password != nil {
			u.Password = *input.Password
		}
		if input.Role != nil {
			u.Role = *input.Role
		}
		if input.Name != nil {
			u.Name = *input.Name
		}
		if input.Phone != nil {
			u.Phone = *input.Phone
		}
		if input.Address != nil {
			u.Address = *input.Address
		}
		if input.Permissions != nil {
			u.Permissions = input.Permissions
		}
		s.persist(storage.KeyUsers, s.users)
		user := *u
		return &user
	}
	return nil
}

// DeleteUser removes a user from the credential list
func (s *Store) DeleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	s.users = users
	s.persist(storage.KeyUsers, s.users)
}

// Authenticate checks the flat credential list by plain equality and returns
// the matching user, or nil.
func (s *Store) Authenticate(username, password string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			user := u
			return &user
		}
	}
	return nil
}

// SetSessionUser records the currently signed-in operator
func (s *Store) SetSessionUser(user entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionUser = &user
	s.persist(storage.KeySessionUser, user)
}

// CurrentUser returns the currently signed-in operator, or nil
func (s *Store) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionUser == nil {
		return nil
	}
	user := *s.sessionUser
	return &user
}

// ClearSession signs the current operator out
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionUser = nil
	if err := s.kv.Delete(storage.KeySessionUser); err != nil {
		log.Printf("Warning: failed to clear %s: %v", storage.KeySessionUser, err)
	}
}
