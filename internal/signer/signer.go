package signer

// Signer interface for signing retire manifests
type Signer interface {
	// SignDetached creates an armored detached signature (manifest.asc)
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the public key
	GetPublicKey() ([]byte, error)
}
