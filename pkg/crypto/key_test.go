package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func strToHex(str string) []byte {
	res, err := hex.DecodeString(strings.TrimPrefix(str, "0x"))
	if err != nil {
		panic(err)
	}
	return res
}

func TestParseDerivationPath(t *testing.T) {
	cases := []struct {
		input    string
		expected []int
		errStr   string
	}{
		{
			input:    "am/32",
			expected: []int{},
			errStr:   "derivation path must start from `m`",
		},
		{
			input:    "m/32/'31",
			expected: []int{},
			errStr:   "invalid segment format",
		},
		{
			input:    "m/2'/1x",
			expected: []int{},
			errStr:   "invalid segment format for 1x",
		},
		{
			input:    "m/4294967295'/1x",
			expected: []int{},
			errStr:   "segment 4294967295' exceeds max uint32 / 2",
		},
		{
			input:    "m/332'/a",
			expected: []int{},
			errStr:   "invalid segment format",
		},
		{
			input:    "m/13343",
			expected: []int{13343},
			errStr:   "",
		},
		{
			input:    "m/44'/134'/0'",
			expected: []int{44 + hardendOffset, 134 + hardendOffset, hardendOffset},
			errStr:   "",
		},
	}

	for _, testCase := range cases {
		t.Logf("Testing input %s", testCase.input)
		result, err := parseDerivationPath(testCase.input)
		if testCase.errStr != "" {
			assert.True(t, errors.Is(err, ErrInvalidDerivationPath))
			assert.Contains(t, err.Error(), testCase.errStr)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, result, testCase.expected)
	}
}

func TestDeriveEd25519Key(t *testing.T) {
	cases := []struct {
		recoveryPhrase string
		derivationPath string
		privateKey     []byte
		errStr         string
	}{
		{
			recoveryPhrase: "target cancel solution recipe vague faint bomb convince pink vendor fresh patrol",
			derivationPath: "m/44'/134'/0'",
			privateKey:     strToHex("0xc465dfb15018d3aef0d94d411df048e240e87a3ec9cd6d422cea903bfc101f61c6bae83af23540096ac58d5121b00f33be6f02f05df785766725acdd5d48be9d"),
		},
		{
			recoveryPhrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			derivationPath: "m/44'/134'/0'",
			privateKey:     strToHex("0x111b6146ec9fbfd7631c75bf42de7c020837d905323a1c161352efed680e86a94815aaeb2da9e7485bfd4f43a5a57431d78fd9e2a3545f9aa6f131ff35ee57b0"),
		},
		{
			recoveryPhrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			derivationPath: "m/44'/134'/1'",
			privateKey:     strToHex("0x544a796e02833f9b6fe90512a8fe48360924a9a5462a5e263a3a40092dae99f50ad5733ff582886700791aed326ff226e1c04ab5b683facb082b36594b7eddb1"),
		},
	}

	for i, testCase := range cases {
		t.Logf("Testing case %d", i+1)
		pk, err := DeriveEd25519Key(testCase.recoveryPhrase, testCase.derivationPath)
		assert.NoError(t, err)
		assert.Equal(t, testCase.privateKey, pk)
	}
}

func TestDeriveEd25519KeyInvalidPath(t *testing.T) {
	_, err := DeriveEd25519Key("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", "")
	assert.True(t, errors.Is(err, ErrInvalidDerivationPath))
}

func TestGenerateMnemonic(t *testing.T) {
	phrase, err := GenerateMnemonic()
	assert.NoError(t, err)
	assert.Len(t, strings.Fields(phrase), 12)
	assert.NoError(t, ValidateMnemonic(phrase))

	other, err := GenerateMnemonic()
	assert.NoError(t, err)
	assert.NotEqual(t, phrase, other)

	sk, err := DeriveEd25519Key(phrase, DefaultDerivationPath)
	assert.NoError(t, err)
	assert.Len(t, sk, EdPrivateKeyLength)
}

func TestValidateMnemonic(t *testing.T) {
	assert.NoError(t, ValidateMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"))
	assert.ErrorIs(t, ValidateMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"), ErrInvalidMnemonic)
	assert.ErrorIs(t, ValidateMnemonic("not a mnemonic"), ErrInvalidMnemonic)
}

func TestNormalizeMnemonic(t *testing.T) {
	assert.Equal(t, "abandon about", NormalizeMnemonic("  ａｂａｎｄｏｎ \t about\n"))

	canonical := "target cancel solution recipe vague faint bomb convince pink vendor fresh patrol"
	padded := " target  cancel solution recipe vague faint bomb convince pink vendor fresh\tpatrol \n"
	assert.NoError(t, ValidateMnemonic(padded))

	expected, err := DeriveEd25519Key(canonical, DefaultDerivationPath)
	assert.NoError(t, err)
	derived, err := DeriveEd25519Key(padded, DefaultDerivationPath)
	assert.NoError(t, err)
	assert.Equal(t, expected, derived)
}
