package patients

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/wellvoice/clinic-ops/internal/phone"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// codeAttempts bounds how many random PT-#### candidates an insert may try
// before giving up. Collisions surface as unique violations from the
// database, never from a pre-flight probe.
const codeAttempts = 10

// Service owns patient identity rules: phone canonicalization, the
// phone-uniqueness invariant, and PT-#### code allocation.
type Service struct {
	repo    Repository
	region  string
	logger  *logging.Logger
	randInt func(n int) int
}

// NewService constructs the service. region is the default phone region for
// numbers without a country prefix.
func NewService(repo Repository, region string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if region == "" {
		region = phone.DefaultRegion
	}
	return &Service{
		repo:    repo,
		region:  region,
		logger:  logger.WithComponent("patients"),
		randInt: rand.Intn,
	}
}

// Upsert finds-or-creates a patient by canonical phone. When the phone is
// already known the name (and dob, if supplied) are overwritten and the
// second return value is false.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*Patient, bool, error) {
	canonical, ok := phone.NormalizeWithRegion(in.Phone, s.region)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidPhone, strings.TrimSpace(in.Phone))
	}

	existing, err := s.repo.GetByPhone(ctx, canonical)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		if in.DOB != "" {
			existing.DOB = in.DOB
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	p := &Patient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     canonical,
		DOB:       in.DOB,
	}
	if err := s.insertWithCode(ctx, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Create inserts a new patient and refuses phones that are already taken.
// Used by direct-entry flows where a silent update is not wanted.
func (s *Service) Create(ctx context.Context, in UpsertInput) (*Patient, error) {
	canonical, ok := phone.NormalizeWithRegion(in.Phone, s.region)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhone, strings.TrimSpace(in.Phone))
	}

	existing, err := s.repo.GetByPhone(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	p := &Patient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     canonical,
		DOB:       in.DOB,
	}
	if err := s.insertWithCode(ctx, p); err != nil {
		if IsUniqueViolation(err, ConstraintPhone) {
			return nil, ErrDuplicatePhone
		}
		return nil, err
	}
	return p, nil
}

// Update applies a partial edit to an existing patient. Changing the phone to
// one owned by a different patient fails with ErrPhoneTaken.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}

	if in.Phone != "" {
		canonical, ok := phone.NormalizeWithRegion(in.Phone, s.region)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPhone, strings.TrimSpace(in.Phone))
		}
		owner, err := s.repo.GetByPhone(ctx, canonical)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != id {
			return nil, ErrPhoneTaken
		}
		p.Phone = canonical
	}
	if in.FirstName != "" {
		p.FirstName = in.FirstName
	}
	if in.LastName != "" {
		p.LastName = in.LastName
	}
	if in.DOB != "" {
		p.DOB = in.DOB
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a patient by code.
func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

// List returns all patients.
func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

// Delete removes a patient by code.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// insertWithCode inserts p under a fresh random code, retrying on code
// collisions reported by the database.
func (s *Service) insertWithCode(ctx context.Context, p *Patient) error {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		p.ID = s.generateCode()
		err := s.repo.Insert(ctx, p)
		if err == nil {
			return nil
		}
		if IsUniqueViolation(err, ConstraintCode) {
			s.logger.Debug("patient code collision, retrying", "code", p.ID, "attempt", attempt+1)
			continue
		}
		return err
	}
	return ErrCodeExhausted
}

func (s *Service) generateCode() string {
	return fmt.Sprintf("PT-%04d", s.randInt(10000))
}
