// Package crypto implements the per-user envelope encryption used by the
// vault and the server-keyed encryption used for disposable identities.
//
// A vault secret is protected in three steps:
//
//	key    = KeyDeriver.Derive(masterPassword, salt)   PBKDF2, per deployment parameters
//	triple = FieldCipher.Encrypt(key, plaintext)        AES-256-GCM, fresh 96-bit nonce
//	plain  = FieldCipher.Decrypt(key, triple)           tag verified before any output
//
// Keys are never cached. Callers derive a key for one operation and release
// it with [Key.Destroy] as soon as the cipher call returns.
//
// [ServerSecretCipher] uses the same cipher under one fixed key decoded from
// deployment configuration. It protects values the server must recover on
// its own against database-dump exposure only.
//
// Every error returned by this package wraps exactly one of
// [ErrKeyDerivation], [ErrInvalidKey], [ErrMalformedCiphertext],
// [ErrDecryptionFailed] or [ErrEncryptionFailed]. Messages never carry
// passwords, keys or messages of the underlying primitives.
package crypto
