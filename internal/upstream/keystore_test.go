package upstream

import (
	"testing"

	"mosfood/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStore_Set(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name: "Valid UUIDv4",
			key:  "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		},
		{
			name: "Valid UUIDv4 with surrounding whitespace",
			key:  "  3fa85f64-5717-4562-b3fc-2c963f66afa6  ",
		},
		{
			name:        "Empty key",
			key:         "",
			expectError: true,
		},
		{
			name:        "Not a UUID at all",
			key:         "hello-world",
			expectError: true,
		},
		{
			name:        "UUIDv1 rejected",
			key:         "8c7f9c1e-0a2b-11ee-be56-0242ac120002",
			expectError: true,
		},
		{
			name:        "Wrong variant rejected",
			key:         "3fa85f64-5717-4562-c3fc-2c963f66afa6",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewKeyStore(zerolog.Nop())
			err := store.Set(tt.key)

			if tt.expectError {
				require.ErrorIs(t, err, model.ErrInvalidAPIKey)
				_, ok := store.Key()
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			key, ok := store.Key()
			require.True(t, ok)
			assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", key)
		})
	}
}

func TestKeyStore_StudentID(t *testing.T) {
	store := NewKeyStore(zerolog.Nop())

	// No key stored: shared default.
	assert.Equal(t, 1001, store.StudentID())

	// First four digits of the key.
	require.NoError(t, store.Set("3fa85f64-5717-4562-b3fc-2c963f66afa6"))
	assert.Equal(t, 3856, store.StudentID())
}

func TestKeyStore_Forget(t *testing.T) {
	store := NewKeyStore(zerolog.Nop())
	require.NoError(t, store.Set("3fa85f64-5717-4562-b3fc-2c963f66afa6"))

	store.Forget()

	_, ok := store.Key()
	assert.False(t, ok)
	assert.Equal(t, 1001, store.StudentID())
}
