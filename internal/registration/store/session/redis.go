package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"udyam-portal/internal/platform/redis"
	"udyam-portal/internal/registration/models"
)

// Redis persists attempt state in redis so a registration survives process
// restarts. Keys expire after the configured retention window.
type Redis struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedis(client *redis.Client, retention time.Duration) *Redis {
	return &Redis{client: client, retention: retention}
}

func applicantKey(attemptID string) string {
	return fmt.Sprintf("registration:applicant:%s", attemptID)
}

func sessionKey(attemptID string) string {
	return fmt.Sprintf("registration:session:%s", attemptID)
}

func (s *Redis) SaveApplicant(ctx context.Context, attemptID string, applicant models.ApplicantDetails) error {
	return s.save(ctx, applicantKey(attemptID), applicant)
}

func (s *Redis) FindApplicant(ctx context.Context, attemptID string) (models.ApplicantDetails, error) {
	var applicant models.ApplicantDetails
	if err := s.find(ctx, applicantKey(attemptID), &applicant); err != nil {
		return models.ApplicantDetails{}, err
	}
	return applicant, nil
}

func (s *Redis) SaveSession(ctx context.Context, attemptID string, session models.RegistrationSession) error {
	return s.save(ctx, sessionKey(attemptID), session)
}

func (s *Redis) FindSession(ctx context.Context, attemptID string) (models.RegistrationSession, error) {
	var session models.RegistrationSession
	if err := s.find(ctx, sessionKey(attemptID), &session); err != nil {
		return models.RegistrationSession{}, err
	}
	return session, nil
}

func (s *Redis) Clear(ctx context.Context, attemptID string) error {
	if err := s.client.Del(ctx, applicantKey(attemptID), sessionKey(attemptID)).Err(); err != nil {
		return fmt.Errorf("clear attempt: %w", err)
	}
	return nil
}

func (s *Redis) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal attempt record: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, s.retention).Err(); err != nil {
		return fmt.Errorf("store attempt record: %w", err)
	}
	return nil
}

func (s *Redis) find(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("load attempt record: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal attempt record: %w", err)
	}
	return nil
}
