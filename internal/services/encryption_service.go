package services

import (
	"mindfullearner/internal/crypto"
	"mindfullearner/internal/models"
)

// EncryptionService seals journal free text at rest. A service built
// without a key passes values through unchanged.
type EncryptionService struct {
	cipher *crypto.Cipher
}

// NewEncryptionService returns a pass-through service when key is empty.
func NewEncryptionService(key []byte) (*EncryptionService, error) {
	if len(key) == 0 {
		return &EncryptionService{}, nil
	}
	c, err := crypto.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{cipher: c}, nil
}

func (s *EncryptionService) Enabled() bool {
	return s != nil && s.cipher != nil
}

func (s *EncryptionService) seal(fields ...*string) error {
	if !s.Enabled() {
		return nil
	}
	for _, f := range fields {
		sealed, err := s.cipher.Encrypt(*f)
		if err != nil {
			return err
		}
		*f = sealed
	}
	return nil
}

func (s *EncryptionService) open(fields ...*string) error {
	if !s.Enabled() {
		return nil
	}
	for _, f := range fields {
		plain, err := s.cipher.Decrypt(*f)
		if err != nil {
			return err
		}
		*f = plain
	}
	return nil
}

// EncryptGratitude seals the three statements before storing.
func (s *EncryptionService) EncryptGratitude(e *models.GratitudeEntry) error {
	return s.seal(&e.Gratitude1, &e.Gratitude2, &e.Gratitude3)
}

func (s *EncryptionService) DecryptGratitude(e *models.GratitudeEntry) error {
	return s.open(&e.Gratitude1, &e.Gratitude2, &e.Gratitude3)
}

// EncryptMood seals the reflection before storing.
func (s *EncryptionService) EncryptMood(e *models.MoodEntry) error {
	return s.seal(&e.Reflection)
}

func (s *EncryptionService) DecryptMood(e *models.MoodEntry) error {
	return s.open(&e.Reflection)
}
