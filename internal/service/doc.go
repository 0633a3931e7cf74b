// Package service implements the business logic of the server.
//
// [VaultService] enforces the master-password-gated access protocol: every
// read or write of an encrypted vault field first checks ownership, then
// loads the owner's salt, derives a key from the master password supplied
// with the request, and finally encrypts or decrypts only the fields the
// request names. Derived keys live for one call and are zeroed before it
// returns.
//
// [IdentityService] keeps disposable mailbox passwords under the
// deployment-wide server key instead, so they can be returned without a
// master password.
package service
