// Package crypto provides crypto related utility functions.
//
// It supports ed25519 for signature scheme, sha256 for hash and bip39 mnemonics for key generation.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	ed "golang.org/x/crypto/ed25519"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

const (
	HashLengh          = 32
	EdPublicKeyLength  = 32
	EdPrivateKeyLength = 64
	EdSignatureLength  = 64
)

var (
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
)

func RandomBytes(size int) []byte {
	r := make([]byte, size)
	if _, err := rand.Read(r); err != nil {
		panic(err)
	}
	return r
}

// GetKeys returns the ed25519 key pair seeded by sha256 of the passphrase.
func GetKeys(passphrase string) ([]byte, []byte, error) {
	passphraseHash := Hash([]byte(passphrase))
	publicKey, privateKey, err := ed.GenerateKey(bytes.NewReader(passphraseHash))
	if err != nil {
		return nil, nil, err
	}
	return publicKey[:], privateKey[:], nil
}

// GetEdPublicKey accepts either a 32 bytes seed or a 64 bytes private key.
func GetEdPublicKey(privateKey []byte) ([]byte, error) {
	switch len(privateKey) {
	case EdPrivateKeyLength:
		return bytes.Copy(privateKey[32:]), nil
	case ed.SeedSize:
		sk := ed.NewKeyFromSeed(privateKey)
		return bytes.Copy(sk[32:]), nil
	default:
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "length %d", len(privateKey))
	}
}

func Hash(data ...[]byte) []byte {
	hasher := sha256.New()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

func Sign(privateKey []byte, message []byte) ([]byte, error) {
	if len(privateKey) != EdPrivateKeyLength {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "length %d", len(privateKey))
	}
	return ed.Sign(privateKey, message), nil
}

func VerifySignature(publicKey, signature []byte, message []byte) error {
	if len(publicKey) != EdPublicKeyLength {
		return errors.Wrapf(ErrInvalidPublicKey, "length %d", len(publicKey))
	}
	if len(signature) != EdSignatureLength {
		return errors.Wrapf(ErrInvalidSignature, "length %d", len(signature))
	}
	if valid := ed.Verify(publicKey, message, signature); !valid {
		return errors.Wrapf(ErrInvalidSignature, "signature %x by %x", signature, publicKey)
	}
	return nil
}
