package service

import (
	"context"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// StateService is the key-value API of a single caller. Every call is scoped to caller.Name.
type StateService struct {
	store  interfaces.StateStore
	logger log.Logger
}

// NewStateService creates a StateService.
func NewStateService(store interfaces.StateStore, logger log.Logger) *StateService {
	return &StateService{
		store:  helpers.NilPanic(store, "service.states.go: store is required"),
		logger: helpers.NilPanic(logger, "service.states.go: logger is required"),
	}
}

// Set stores value under key, replacing a previous value. A nil value means it was not supplied;
// an empty value is stored as is.
func (s *StateService) Set(ctx context.Context, caller domain.User, key string, value *string) error {
	if key == "" {
		return NewBadParameterError("missing parameter key", nil)
	}
	if value == nil {
		return NewBadParameterError("missing parameter value", nil)
	}

	if err := s.store.Upsert(ctx, caller.Name, key, *value); err != nil {
		return NewInternalServerError("failed to store state", err)
	}

	level.Debug(s.logger).Log("msg", "state stored", "owner", caller.Name, "key", key)
	return nil
}

func (s *StateService) Get(ctx context.Context, caller domain.User, key string) (string, error) {
	if key == "" {
		return "", NewBadParameterError("missing parameter key", nil)
	}

	value, err := s.store.Get(ctx, caller.Name, key)
	if err != nil {
		return "", NewInternalServerError("failed to read state", err)
	}
	return value, nil
}

func (s *StateService) Delete(ctx context.Context, caller domain.User, key string) error {
	if key == "" {
		return NewBadParameterError("missing parameter key", nil)
	}

	if err := s.store.Delete(ctx, caller.Name, key); err != nil {
		return NewInternalServerError("failed to remove state", err)
	}

	level.Debug(s.logger).Log("msg", "state removed", "owner", caller.Name, "key", key)
	return nil
}

// List returns every entry of caller. It is never nil.
func (s *StateService) List(ctx context.Context, caller domain.User) (map[string]string, error) {
	states, err := s.store.List(ctx, caller.Name)
	if err != nil {
		return nil, NewInternalServerError("failed to list states", err)
	}
	if states == nil {
		states = map[string]string{}
	}
	return states, nil
}
