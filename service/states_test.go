package service

import (
	"context"
	"errors"
	"testing"

	"iotpersistence/domain"
	"iotpersistence/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caller = domain.User{Name: "sensor-1", Role: domain.RoleStandard}

func TestStateService_Set(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		key          string
		value        *string
		upsertErr    error
		checkErrCode string
		wantUpserts  int
	}{
		{name: "missing key", key: "", value: Ptr("v"), checkErrCode: ErrBadParameter},
		{name: "missing value", key: "temp", value: nil, checkErrCode: ErrBadParameter},
		{name: "empty value is stored", key: "temp", value: Ptr(""), wantUpserts: 1},
		{name: "store failure", key: "temp", value: Ptr("21.5"), upsertErr: errors.New("database is locked"), checkErrCode: ErrInternalServerError, wantUpserts: 1},
		{name: "success", key: "temp", value: Ptr("21.5"), wantUpserts: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mock.StateStoreMock{
				UpsertFunc: func(ctx context.Context, owner, key, value string) error {
					return tt.upsertErr
				},
			}
			s := NewStateService(store, log.NewNopLogger())

			err := s.Set(ctx, caller, tt.key, tt.value)
			if tt.checkErrCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.checkErrCode, ToMyErrorCode(err))
			} else {
				require.NoError(t, err)
			}

			calls := store.UpsertCalls()
			require.Len(t, calls, tt.wantUpserts)
			if tt.wantUpserts > 0 {
				assert.Equal(t, caller.Name, calls[0].Owner)
				assert.Equal(t, tt.key, calls[0].Key)
				assert.Equal(t, *tt.value, calls[0].Value)
			}
		})
	}
}

func TestStateService_Get(t *testing.T) {
	ctx := context.Background()
	store := &mock.StateStoreMock{
		GetFunc: func(ctx context.Context, owner, key string) (string, error) {
			if owner == "sensor-1" && key == "temp" {
				return "21.5", nil
			}
			return "", NewEntityNotFoundError("state not found", nil)
		},
	}
	s := NewStateService(store, log.NewNopLogger())

	got, err := s.Get(ctx, caller, "temp")
	require.NoError(t, err)
	assert.Equal(t, "21.5", got)

	_, err = s.Get(ctx, caller, "humidity")
	assert.True(t, IsEntityNotFoundError(err))

	_, err = s.Get(ctx, caller, "")
	assert.True(t, IsBadParameterError(err))

	_, err = s.Get(ctx, domain.User{Name: "sensor-2"}, "temp")
	assert.True(t, IsEntityNotFoundError(err), "owner comes from the caller only")
}

func TestStateService_Delete(t *testing.T) {
	ctx := context.Background()
	store := &mock.StateStoreMock{
		DeleteFunc: func(ctx context.Context, owner, key string) error {
			if key == "temp" {
				return nil
			}
			return NewEntityNotFoundError("state not found", nil)
		},
	}
	s := NewStateService(store, log.NewNopLogger())

	require.NoError(t, s.Delete(ctx, caller, "temp"))
	assert.True(t, IsEntityNotFoundError(s.Delete(ctx, caller, "humidity")))
	assert.True(t, IsBadParameterError(s.Delete(ctx, caller, "")))
	assert.Len(t, store.DeleteCalls(), 2)
	assert.Equal(t, caller.Name, store.DeleteCalls()[0].Owner)
}

func TestStateService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		s := NewStateService(&mock.StateStoreMock{}, log.NewNopLogger())
		got, err := s.List(ctx, caller)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("entries", func(t *testing.T) {
		store := &mock.StateStoreMock{
			ListFunc: func(ctx context.Context, owner string) (map[string]string, error) {
				return map[string]string{"temp": "21.5", "door": "open"}, nil
			},
		}
		s := NewStateService(store, log.NewNopLogger())
		got, err := s.List(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"temp": "21.5", "door": "open"}, got)
		assert.Equal(t, caller.Name, store.ListCalls()[0].Owner)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mock.StateStoreMock{
			ListFunc: func(ctx context.Context, owner string) (map[string]string, error) {
				return nil, errors.New("disk I/O error")
			},
		}
		s := NewStateService(store, log.NewNopLogger())
		_, err := s.List(ctx, caller)
		assert.True(t, IsInternalServerError(err))
	})
}
