package repository

import "sync"

// dummyPassword only seeds the decoy hash; it never matches a stored user.
const dummyPassword = "decoy-password-for-unknown-accounts"

// DummyVerifier runs one hasher verification for credential lookups that
// found no user, so an unknown email costs the same as a wrong password.
// The decoy hash is produced by the same hasher, so it carries the same
// work factor as real hashes.
type DummyVerifier struct {
	hasher PasswordHasher
	once   sync.Once
	hash   string
}

func NewDummyVerifier(h PasswordHasher) *DummyVerifier {
	return &DummyVerifier{hasher: h}
}

// Verify always reports false.
func (d *DummyVerifier) Verify(plain string) bool {
	d.once.Do(func() {
		d.hash, _ = d.hasher.Hash(dummyPassword)
	})
	_ = d.hasher.Verify(plain, d.hash)
	return false
}
