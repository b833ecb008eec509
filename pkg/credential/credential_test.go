package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", digest)

	other, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "salt must make digest non deterministic")

	tests := []struct {
		name      string
		plaintext string
		digest    string
		want      bool
	}{
		{name: "Testcase #1: match", plaintext: "pw1", digest: digest, want: true},
		{name: "Testcase #2: mismatch", plaintext: "pw2", digest: digest, want: false},
		{name: "Testcase #3: empty password", plaintext: "", digest: digest, want: false},
		{name: "Testcase #4: malformed digest", plaintext: "pw1", digest: "not-a-bcrypt-hash", want: false},
		{name: "Testcase #5: empty digest", plaintext: "pw1", digest: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Verify(tt.plaintext, tt.digest))
		})
	}
}

func TestNewBcryptHasher(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
