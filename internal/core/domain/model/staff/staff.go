// Package staff holds the staff member aggregate and the role capability
// model used to gate every operation in the system.
package staff

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
)

// pinHashCost matches the cost used for existing records; changing it only
// affects newly set PINs.
const pinHashCost = 12

var (
	// ErrStaffIsNotConstructed is returned when a Staff instance was not created
	// through the NewStaff or RestoreStaff factory functions.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff")
)

// Staff is a restaurant employee who signs in with a username and a
// four-digit PIN. The PIN is stored only as a bcrypt hash.
type Staff struct {
	id       kernel.UUID
	fullName string
	username string
	pinHash  []byte
	role     Role

	createdAt time.Time

	isConstructed bool
}

// NewStaff creates a staff member, hashing the given PIN. The username is
// normalized to lower case; the PIN must be exactly four digits.
func NewStaff(id kernel.UUID, fullName, username, pin string, role Role, createdAt time.Time) (*Staff, error) {
	s := &Staff{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setFullName(fullName),
		s.setUsername(username),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := s.SetPIN(pin); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a staff member from persistence. The PIN hash
// is taken as-is.
func RestoreStaff(id kernel.UUID, fullName, username string, pinHash []byte, role Role, createdAt time.Time) (*Staff, error) {
	s := &Staff{
		pinHash:       pinHash,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setFullName(fullName),
		s.setUsername(username),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(pinHash) == 0 {
		return nil, errs.NewValueIsRequiredError("pin hash")
	}

	return s, nil
}

// Validate ensures the Staff instance was properly constructed through a
// factory function.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID { return s.id }

// FullName returns the display name shown on orders and dashboards.
func (s *Staff) FullName() string { return s.fullName }

// Username returns the lower-case sign-in name.
func (s *Staff) Username() string { return s.username }

// PINHash returns the bcrypt hash of the PIN, for persistence only.
func (s *Staff) PINHash() []byte { return s.pinHash }

// Role returns the staff member's role.
func (s *Staff) Role() Role { return s.role }

// CreatedAt returns the record creation timestamp.
func (s *Staff) CreatedAt() time.Time { return s.createdAt }

// VerifyPIN reports whether the candidate PIN matches the stored hash.
func (s *Staff) VerifyPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)) == nil
}

// SetPIN replaces the PIN with a new four-digit value.
func (s *Staff) SetPIN(pin string) error {
	if err := validatePIN(pin); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), pinHashCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	s.pinHash = hash
	return nil
}

// UpdateProfile changes the staff member's name, username and role.
func (s *Staff) UpdateProfile(fullName, username string, role Role) error {
	return errors.Join(
		s.setFullName(fullName),
		s.setUsername(username),
		s.setRole(role),
	)
}

// Principal identifies an authenticated caller to the use cases. It is
// what the transport layer hands down after verifying a token.
type Principal struct {
	ID          kernel.UUID
	Role        Role
	DisplayName string
}

// Principal returns the staff member's identity for request handling.
func (s *Staff) Principal() Principal {
	return Principal{
		ID:          s.id,
		Role:        s.role,
		DisplayName: s.fullName,
	}
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	s.fullName = strings.TrimSpace(fullName)
	return nil
}

func (s *Staff) setUsername(username string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	s.username = username
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func validatePIN(pin string) error {
	if len(pin) != 4 {
		return errs.NewValueIsInvalidErrorWithCause("pin", errors.New("pin must be exactly 4 digits"))
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("pin", errors.New("pin must contain digits only"))
		}
	}
	return nil
}
