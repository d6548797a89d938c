// Package crypto seals secrets that the server stores on behalf of users,
// such as the API keys of personal completion endpoints.
//
// The sealing key is derived once from a server secret with Argon2id. Every
// value is sealed with AES-256-GCM under a fresh nonce:
//
//	sealed = prefix ‖ base64(nonce ‖ ciphertext)
package crypto

// KeyChain seals and opens stored secrets.
type KeyChain interface {
	// Seal encrypts plaintext. The empty string is returned unchanged so
	// that "no key" stays distinguishable in storage.
	Seal(plaintext string) (string, error)

	// Open decrypts a value produced by Seal. Values without the sealed
	// prefix were stored before sealing was enabled and are returned as is.
	Open(value string) (string, error)
}
