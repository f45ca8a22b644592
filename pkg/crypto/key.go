package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"hash"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tyler-smith/go-bip39"
	ed "golang.org/x/crypto/ed25519"
	"golang.org/x/text/unicode/norm"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

const (
	hardendOffset = 0x80000000
	// DefaultDerivationPath is the hardened path used when none is given.
	DefaultDerivationPath = "m/44'/501'/0'/0'"
	mnemonicEntropyBits   = 128
)

var (
	ErrInvalidMnemonic       = errors.New("invalid mnemonic")
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	keyPathRegex             = regexp.MustCompile("^[0-9]+'?$")
)

// GenerateMnemonic returns a new 12 words recovery phrase.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NormalizeMnemonic applies NFKD and collapses whitespace between words.
func NormalizeMnemonic(recoveryPhrase string) string {
	return norm.NFKD.String(strings.Join(strings.Fields(recoveryPhrase), " "))
}

func ValidateMnemonic(recoveryPhrase string) error {
	if !bip39.IsMnemonicValid(NormalizeMnemonic(recoveryPhrase)) {
		return ErrInvalidMnemonic
	}
	return nil
}

func parseDerivationPath(path string) ([]int, error) {
	if len(path) == 0 || path[0] != 'm' {
		return nil, errors.Wrap(ErrInvalidDerivationPath, "derivation path must start from `m`")
	}
	segments := strings.Split(path, "/")
	result := make([]int, len(segments)-1)
	for i, segment := range segments {
		// first segment is m
		if i == 0 {
			continue
		}
		if segment == "" {
			return nil, errors.Wrap(ErrInvalidDerivationPath, "each segment cannot be empty")
		}
		if !keyPathRegex.MatchString(segment) {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "invalid segment format for %s", segment)
		}
		hardened := strings.HasSuffix(segment, "'")
		val, err := strconv.Atoi(strings.TrimSuffix(segment, "'"))
		if err != nil {
			return nil, err
		}
		if val > math.MaxUint32/2 {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "segment %s exceeds max uint32 / 2", segment)
		}
		if hardened {
			val += hardendOffset
		}
		result[i-1] = val
	}
	return result, nil
}

// DeriveEd25519Key derives the 64 bytes ed25519 private key of the path from the recovery phrase.
func DeriveEd25519Key(recoveryPhrase, path string) ([]byte, error) {
	derivationPath, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(NormalizeMnemonic(recoveryPhrase), "")
	key, chainCode, err := getEd25519MasterKey(seed)
	if err != nil {
		return nil, err
	}
	for _, segment := range derivationPath {
		key, chainCode, err = getEd25519ChildKey(key, chainCode, segment)
		if err != nil {
			return nil, err
		}
	}
	return ed.NewKeyFromSeed(key), nil
}

func hmacHash(hasher func() hash.Hash, key, message []byte) ([]byte, error) {
	hmacer := hmac.New(hasher, key)
	if _, err := hmacer.Write(message); err != nil {
		return nil, err
	}
	return hmacer.Sum(nil), nil
}

func getEd25519MasterKey(seed []byte) ([]byte, []byte, error) {
	result, err := hmacHash(sha512.New, []byte("ed25519 seed"), seed)
	if err != nil {
		return nil, nil, err
	}
	return result[:32], result[32:], nil
}

func getEd25519ChildKey(key, chainCode []byte, index int) ([]byte, []byte, error) {
	result, err := hmacHash(sha512.New, chainCode, bytes.Join([]byte{0}, key, bytes.FromUint32(uint32(index))))
	if err != nil {
		return nil, nil, err
	}
	return result[:32], result[32:], nil
}
