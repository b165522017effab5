package signer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// writeTestKey generates a throwaway key and writes its armored private part
func writeTestKey(t *testing.T) string {
	t.Helper()

	entity, err := openpgp.NewEntity("rpmring test", "", "test@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatalf("Failed to open armor: %v", err)
	}
	if err := entity.SerializePrivate(w, nil); err != nil {
		t.Fatalf("Failed to serialize key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close armor: %v", err)
	}

	path := filepath.Join(t.TempDir(), "key.asc")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write key: %v", err)
	}
	return path
}

func TestSignDetachedVerifies(t *testing.T) {
	s, err := NewGPGSigner(writeTestKey(t), "")
	if err != nil {
		t.Fatalf("NewGPGSigner failed: %v", err)
	}

	data := []byte("38778815,39188647\n")
	sig, err := s.SignDetached(data)
	if err != nil {
		t.Fatalf("SignDetached failed: %v", err)
	}

	pub, err := s.GetPublicKey()
	if err != nil {
		t.Fatalf("GetPublicKey failed: %v", err)
	}
	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(pub))
	if err != nil {
		t.Fatalf("Failed to read public key: %v", err)
	}

	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(data), bytes.NewReader(sig), nil); err != nil {
		t.Errorf("Signature does not verify: %v", err)
	}

	tampered := []byte("38778815\n")
	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(tampered), bytes.NewReader(sig), nil); err == nil {
		t.Error("Signature verified over tampered data")
	}
}

func TestNewGPGSignerErrors(t *testing.T) {
	if _, err := NewGPGSigner("", ""); err == nil {
		t.Error("Expected error for empty key path")
	}
	if _, err := NewGPGSigner(filepath.Join(t.TempDir(), "missing.asc"), ""); err == nil {
		t.Error("Expected error for missing key file")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.asc")
	if err := os.WriteFile(garbage, []byte("not a key"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := NewGPGSigner(garbage, ""); err == nil {
		t.Error("Expected error for garbage key file")
	}
}
