package permkit

import (
	"encoding/binary"
	"math/big"
)

// Bytes returns the minimal big-endian encoding of p: no leading zero bytes,
// and nil for the zero mask.
func (p Permission) Bytes() []byte {
	if len(p.words) == 0 {
		return nil
	}
	buf := make([]byte, len(p.words)*8)
	for i, w := range p.words {
		binary.BigEndian.PutUint64(buf[(len(p.words)-1-i)*8:], w)
	}
	i := 0
	for buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// FromBytes decodes a big-endian byte string into a Permission. Leading zero
// bytes carry no information, so all encodings of a value decode Equal.
func FromBytes(data []byte) Permission {
	words := make([]uint64, (len(data)+7)/8)
	for i := range words {
		end := len(data) - i*8
		start := max(end-8, 0)
		var w uint64
		for _, b := range data[start:end] {
			w = w<<8 | uint64(b)
		}
		words[i] = w
	}
	return Permission{words: trim(words)}
}

// String returns p as a decimal integer, however many bits are set. The zero
// mask reads "0".
func (p Permission) String() string {
	return p.bigInt().Text(10)
}

// Hex returns p as a lowercase hexadecimal integer without a prefix.
func (p Permission) Hex() string {
	return p.bigInt().Text(16)
}

// Parse decodes the textual form produced by [Permission.String] (base 10)
// or [Permission.Hex] (base 16). It accepts any unsigned integer in that
// base, so values written by other systems round-trip too.
func Parse(s string, base int) (Permission, error) {
	if base != 10 && base != 16 {
		return Permission{}, ErrBase
	}
	if s == "" {
		return Permission{}, ErrSyntax
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Permission{}, ErrSyntax
	}
	if n.Sign() < 0 {
		return Permission{}, ErrNegative
	}
	return FromBytes(n.Bytes()), nil
}

// MarshalText implements encoding.TextMarshaler using the decimal form, so a
// Permission drops into JSON fields, text database columns, and token claims
// without an adapter.
func (p Permission) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the decimal form.
func (p *Permission) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), 10)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Permission) bigInt() *big.Int {
	return new(big.Int).SetBytes(p.Bytes())
}
