package service

import (
	"testing"

	"watbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAccessService_IsOwner(t *testing.T) {
	mockStore := new(testutil.MockWhitelistStore)
	mockStore.On("Owner").Return(int64(42))

	service := NewAccessService(mockStore)

	assert.True(t, service.IsOwner(42))
	assert.False(t, service.IsOwner(43))
}

func TestAccessService_IsAllowed(t *testing.T) {
	tests := []struct {
		name         string
		userID       int64
		useWhitelist bool
		whitelist    map[string]int64
		expected     bool
	}{
		{
			name:         "whitelist disabled allows anyone",
			userID:       999,
			useWhitelist: false,
			expected:     true,
		},
		{
			name:         "owner always allowed",
			userID:       42,
			useWhitelist: true,
			expected:     true,
		},
		{
			name:         "whitelisted user allowed",
			userID:       100,
			useWhitelist: true,
			whitelist:    map[string]int64{"alice": 100},
			expected:     true,
		},
		{
			name:         "unknown user denied",
			userID:       999,
			useWhitelist: true,
			whitelist:    map[string]int64{"alice": 100},
			expected:     false,
		},
		{
			name:         "empty whitelist denies non-owner",
			userID:       999,
			useWhitelist: true,
			whitelist:    map[string]int64{},
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockWhitelistStore)
			mockStore.On("Owner").Return(int64(42)).Maybe()
			mockStore.On("UseWhitelist").Return(tt.useWhitelist)
			if tt.whitelist != nil {
				mockStore.On("Whitelist").Return(tt.whitelist)
			}

			service := NewAccessService(mockStore)

			assert.Equal(t, tt.expected, service.IsAllowed(tt.userID))
		})
	}
}

func TestAccessService_WhitelistPassthrough(t *testing.T) {
	mockStore := new(testutil.MockWhitelistStore)
	mockStore.On("AddWhitelistEntry", "alice", int64(100)).Return(true, nil)
	mockStore.On("RemoveWhitelistEntry", "alice").Return(true, nil)
	mockStore.On("Whitelist").Return(map[string]int64{"alice": 100})

	service := NewAccessService(mockStore)

	added, err := service.AddWhitelistEntry("alice", 100)
	assert.NoError(t, err)
	assert.True(t, added)

	removed, err := service.RemoveWhitelistEntry("alice")
	assert.NoError(t, err)
	assert.True(t, removed)

	assert.Equal(t, map[string]int64{"alice": 100}, service.WhitelistEntries())
	mockStore.AssertExpectations(t)
}
