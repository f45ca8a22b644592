package codec

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Hex is a byte slice represented as hex string in JSON.
type Hex []byte

// HexFromString decodes s with an optional 0x prefix.
func HexFromString(s string) (Hex, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func (h *Hex) UnmarshalJSON(b []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	res, err := HexFromString(str)
	if err != nil {
		return err
	}
	*h = res
	return nil
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
