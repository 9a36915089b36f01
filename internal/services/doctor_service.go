package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medicore/clinic-api/internal/models"
	"github.com/medicore/clinic-api/internal/store"
	"github.com/medicore/clinic-api/internal/utils"
	"github.com/medicore/clinic-api/internal/validation"
)

var (
	// ErrDuplicateEmail covers any unique-index collision at registration.
	// The index on doctorName maps here too; the response message stays
	// generic enough for both.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// DoctorService handles doctor registration and login.
type DoctorService struct {
	doctors store.DoctorStore
	tokens  *utils.TokenIssuer
}

func NewDoctorService(doctors store.DoctorStore, tokens *utils.TokenIssuer) *DoctorService {
	return &DoctorService{doctors: doctors, tokens: tokens}
}

// Register validates and normalizes the input, hashes the password and
// persists the doctor. Uniqueness is enforced by the store's unique index,
// not by a read-then-write check, so concurrent duplicates cannot slip
// through. Returns the created doctor and a signed token.
func (s *DoctorService) Register(ctx context.Context, in validation.RegisterInput) (*models.Doctor, string, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return nil, "", errs
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	doctor := &models.Doctor{
		DoctorName:    in.DoctorName,
		Email:         in.Email,
		Password:      hash,
		Qualification: in.Qualification,
	}
	if err := s.doctors.Insert(ctx, doctor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", ErrDuplicateEmail
		}
		log.Error().Err(err).Str("email", in.Email).Msg("register: insert failed")
		return nil, "", err
	}

	token, err := s.tokens.Generate(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return doctor, token, nil
}

// Login checks the credentials and mints a token. An unknown email and a
// wrong password both come back as ErrInvalidCredentials.
func (s *DoctorService) Login(ctx context.Context, in validation.LoginInput) (*models.Doctor, string, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return nil, "", errs
	}

	doctor, err := s.doctors.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("login: lookup failed")
		return nil, "", err
	}
	if !utils.CheckPasswordHash(in.Password, doctor.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return doctor, token, nil
}
