package entities_test

import (
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddr(t *testing.T, id string, isDefault bool) entities.Address {
	t.Helper()
	a, err := entities.NewAddress(id, entities.AddressInput{
		Street:    "1 Rd",
		City:      "Dhaka",
		State:     "Dhaka",
		ZipCode:   "1000",
		IsDefault: isDefault,
	})
	require.NoError(t, err)
	return a
}

func countDefaults(b entities.AddressBook) int {
	n := 0
	for _, a := range b {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func ptr[T any](v T) *T { return &v }

func TestNewAddress(t *testing.T) {
	testCases := []struct {
		name      string
		in        entities.AddressInput
		wantField string
		want      entities.Address
	}{
		{
			name: "defaults and trimming",
			in:   entities.AddressInput{Street: "  1 Rd ", City: "Dhaka", State: "Dhaka", ZipCode: " 1000"},
			want: entities.Address{
				ID: "a1", Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000",
				Country: "Bangladesh", Label: "home",
			},
		},
		{
			name: "explicit country and label kept",
			in:   entities.AddressInput{Street: "5th Ave", City: "NYC", State: "NY", ZipCode: "10001", Country: "USA", Label: "work"},
			want: entities.Address{
				ID: "a1", Street: "5th Ave", City: "NYC", State: "NY", ZipCode: "10001",
				Country: "USA", Label: "work",
			},
		},
		{
			name:      "missing street",
			in:        entities.AddressInput{City: "Dhaka", State: "Dhaka", ZipCode: "1000"},
			wantField: "street",
		},
		{
			name:      "blank zip code",
			in:        entities.AddressInput{Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "   "},
			wantField: "zipCode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.NewAddress("a1", tc.in)
			if tc.wantField != "" {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressBook_Add(t *testing.T) {
	t.Run("first address is always default", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))

		require.Len(t, b, 1)
		assert.True(t, b[0].IsDefault)
		assert.Equal(t, "Bangladesh", b[0].Country)
		assert.Equal(t, "home", b[0].Label)
	})

	t.Run("new default clears previous one", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", true))

		assert.False(t, b[0].IsDefault)
		assert.True(t, b[1].IsDefault)
		assert.Equal(t, 1, countDefaults(b))
	})

	t.Run("non default keeps existing default", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", false))

		assert.True(t, b[0].IsDefault)
		assert.False(t, b[1].IsDefault)
	})
}

func TestAddressBook_Update(t *testing.T) {
	t.Run("partial update leaves absent fields", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))

		err := b.Update("a1", entities.AddressPatch{City: ptr(" Chittagong ")})
		require.NoError(t, err)

		assert.Equal(t, "Chittagong", b[0].City)
		assert.Equal(t, "1 Rd", b[0].Street)
		assert.True(t, b[0].IsDefault)
	})

	t.Run("set default moves the flag", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", false))
		b.Add(newAddr(t, "a3", false))

		require.NoError(t, b.Update("a3", entities.AddressPatch{IsDefault: ptr(true)}))

		assert.False(t, b[0].IsDefault)
		assert.False(t, b[1].IsDefault)
		assert.True(t, b[2].IsDefault)
	})

	t.Run("unset the only default falls back to first", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", true))

		require.NoError(t, b.Update("a2", entities.AddressPatch{IsDefault: ptr(false)}))

		assert.True(t, b[0].IsDefault)
		assert.Equal(t, 1, countDefaults(b))
	})

	t.Run("unknown id", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))

		err := b.Update("missing", entities.AddressPatch{City: ptr("X")})
		assert.ErrorIs(t, err, entities.ErrAddressNotFound)
	})

	t.Run("blanking a required field is rejected", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))

		err := b.Update("a1", entities.AddressPatch{Street: ptr("  ")})
		assert.True(t, entities.IsValidation(err))
		assert.Equal(t, "1 Rd", b[0].Street)
	})
}

func TestAddressBook_Remove(t *testing.T) {
	t.Run("removing default promotes first remaining", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", false))
		b.Add(newAddr(t, "a3", true))

		require.NoError(t, b.Remove("a3"))

		require.Len(t, b, 2)
		assert.True(t, b[0].IsDefault)
		assert.Equal(t, "a1", b[0].ID)
		assert.Equal(t, 1, countDefaults(b))
	})

	t.Run("removing non default keeps default", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))
		b.Add(newAddr(t, "a2", true))

		require.NoError(t, b.Remove("a1"))

		require.Len(t, b, 1)
		assert.Equal(t, "a2", b[0].ID)
		assert.True(t, b[0].IsDefault)
	})

	t.Run("removing last leaves empty book", func(t *testing.T) {
		var b entities.AddressBook
		b.Add(newAddr(t, "a1", false))

		require.NoError(t, b.Remove("a1"))
		assert.Empty(t, b)
	})

	t.Run("unknown id", func(t *testing.T) {
		var b entities.AddressBook
		assert.ErrorIs(t, b.Remove("a1"), entities.ErrAddressNotFound)
	})
}

func TestAddressBook_SingleDefaultAfterMixedSequence(t *testing.T) {
	var b entities.AddressBook
	for i := range 6 {
		b.Add(newAddr(t, fmt.Sprintf("a%d", i), i%2 == 0))
		assert.Equal(t, 1, countDefaults(b))
	}

	require.NoError(t, b.Update("a1", entities.AddressPatch{IsDefault: ptr(true)}))
	assert.Equal(t, 1, countDefaults(b))

	require.NoError(t, b.Remove("a1"))
	assert.Equal(t, 1, countDefaults(b))
	assert.True(t, b[0].IsDefault)

	require.NoError(t, b.Update("a3", entities.AddressPatch{IsDefault: ptr(false)}))
	assert.Equal(t, 1, countDefaults(b))

	for len(b) > 0 {
		require.NoError(t, b.Remove(b[len(b)-1].ID))
		if len(b) > 0 {
			assert.Equal(t, 1, countDefaults(b))
		}
	}
}

func TestAddressBook_Normalize(t *testing.T) {
	b := entities.AddressBook{
		{ID: "a1", IsDefault: false},
		{ID: "a2", IsDefault: true},
		{ID: "a3", IsDefault: true},
	}
	b.Normalize()

	assert.False(t, b[0].IsDefault)
	assert.True(t, b[1].IsDefault)
	assert.False(t, b[2].IsDefault)
}
