package directory

import (
	"context"
	"sync"

	"udyam-portal/internal/directory/models"
	"udyam-portal/internal/sentinel"
)

// InMemory is the directory store for the demo deployment and tests. All
// indexes are kept in lockstep under one mutex.
type InMemory struct {
	mu           sync.RWMutex
	byUdyam      map[string]models.RegistrationRecord
	byPAN        map[string]string
	byMobile     map[string]string
	certificates map[string]models.CertificateRecord
	postalAreas  map[string]models.PostalArea
}

func NewInMemory() *InMemory {
	return &InMemory{
		byUdyam:      make(map[string]models.RegistrationRecord),
		byPAN:        make(map[string]string),
		byMobile:     make(map[string]string),
		certificates: make(map[string]models.CertificateRecord),
		postalAreas:  make(map[string]models.PostalArea),
	}
}

func (s *InMemory) FindByUdyam(_ context.Context, number string) (models.RegistrationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.byUdyam[number]; ok {
		return rec, nil
	}
	return models.RegistrationRecord{}, sentinel.ErrNotFound
}

func (s *InMemory) FindByPAN(_ context.Context, pan string) (models.RegistrationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if number, ok := s.byPAN[pan]; ok {
		return s.byUdyam[number], nil
	}
	return models.RegistrationRecord{}, sentinel.ErrNotFound
}

func (s *InMemory) FindByMobile(_ context.Context, mobile string) (models.RegistrationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if number, ok := s.byMobile[mobile]; ok {
		return s.byUdyam[number], nil
	}
	return models.RegistrationRecord{}, sentinel.ErrNotFound
}

func (s *InMemory) FindCertificate(_ context.Context, number string) (models.CertificateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cert, ok := s.certificates[number]; ok {
		return cert, nil
	}
	return models.CertificateRecord{}, sentinel.ErrNotFound
}

func (s *InMemory) FindPostalArea(_ context.Context, pincode string) (models.PostalArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if area, ok := s.postalAreas[pincode]; ok {
		return area, nil
	}
	return models.PostalArea{}, sentinel.ErrNotFound
}

func (s *InMemory) PutRegistration(_ context.Context, rec models.RegistrationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUdyam[rec.UdyamNumber] = rec
	s.byPAN[rec.PAN] = rec.UdyamNumber
	s.byMobile[rec.MobileNumber] = rec.UdyamNumber
	return nil
}

func (s *InMemory) PutCertificate(_ context.Context, cert models.CertificateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certificates[cert.CertificateNumber] = cert
	return nil
}

func (s *InMemory) PutPostalArea(_ context.Context, area models.PostalArea) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postalAreas[area.Pincode] = area
	return nil
}
