package permkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"255",
		"256",
		"18446744073709551615",                    // all of word 0
		"18446744073709551616",                    // bit 64
		"340282366920938463463374607431768211457", // bits 0 and 128
	}

	for _, dec := range values {
		p := perm(t, dec)
		if got := FromBytes(p.Bytes()); !got.Equal(p) {
			t.Fatalf("FromBytes(Bytes(%s)) = %s", dec, got)
		}
	}
}

func TestBytesMinimal(t *testing.T) {
	if b := (Permission{}).Bytes(); b != nil {
		t.Fatalf("zero mask encodes to %v, want nil", b)
	}
	if b := bitValue(64).Bytes(); len(b) == 0 || b[0] == 0 {
		t.Fatalf("encoding carries a leading zero byte: %v", b)
	}
	if got := bitValue(9).Bytes(); !bytes.Equal(got, []byte{0x02, 0x00}) {
		t.Fatalf("bit 9 encodes to %v, want [2 0]", got)
	}
}

func TestFromBytesLeadingZeros(t *testing.T) {
	plain := FromBytes([]byte{0x01, 0x00})
	padded := FromBytes([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00})
	if !plain.Equal(padded) {
		t.Fatalf("padded decode %s != plain decode %s", padded, plain)
	}
	if !FromBytes(nil).IsZero() || !FromBytes([]byte{0, 0, 0}).IsZero() {
		t.Fatal("all-zero input must decode to the zero mask")
	}
}

func TestTextRoundTrip(t *testing.T) {
	values := []string{
		"0",
		"11",
		"18446744073709551616",
		"340282366920938463463374607431768211457",
	}

	for _, dec := range values {
		p := perm(t, dec)

		if got := p.String(); got != dec {
			t.Fatalf("String = %s, want %s", got, dec)
		}
		fromHex, err := Parse(p.Hex(), 16)
		if err != nil {
			t.Fatalf("Parse(Hex(%s)) failed: %v", dec, err)
		}
		if !fromHex.Equal(p) {
			t.Fatalf("hex round trip of %s = %s", dec, fromHex)
		}
	}
}

func TestHexForm(t *testing.T) {
	if got := perm(t, "255").Hex(); got != "ff" {
		t.Fatalf("Hex(255) = %s, want ff", got)
	}
	if got := (Permission{}).Hex(); got != "0" {
		t.Fatalf("Hex(0) = %s, want 0", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		base int
		want error
	}{
		{"11", 2, ErrBase},
		{"11", 0, ErrBase},
		{"", 10, ErrSyntax},
		{"12z", 10, ErrSyntax},
		{"0x1f", 16, ErrSyntax},
		{" 7", 10, ErrSyntax},
		{"-5", 10, ErrNegative},
		{"-ff", 16, ErrNegative},
	}

	for _, tc := range cases {
		_, err := Parse(tc.text, tc.base)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q, %d) err = %v, want %v", tc.text, tc.base, err, tc.want)
		}
	}
}

func TestParseForeignForms(t *testing.T) {
	// Values written by other systems: uppercase hex, redundant leading
	// zeros. Both denote the same integer and must decode Equal.
	a, err := Parse("00FF", 16)
	if err != nil {
		t.Fatalf("Parse uppercase hex failed: %v", err)
	}
	if !a.Equal(perm(t, "255")) {
		t.Fatalf("Parse(00FF) = %s, want 255", a)
	}

	b, err := Parse("007", 10)
	if err != nil {
		t.Fatalf("Parse zero-padded decimal failed: %v", err)
	}
	if !b.Equal(perm(t, "7")) {
		t.Fatalf("Parse(007) = %s, want 7", b)
	}
}

func TestTextMarshalerJSON(t *testing.T) {
	type record struct {
		ID    string     `json:"id"`
		Perms Permission `json:"perms"`
	}

	in := record{ID: "u1", Perms: bitValue(0).Or(bitValue(130))}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !out.Perms.Equal(in.Perms) {
		t.Fatalf("JSON round trip changed value: %s != %s", out.Perms, in.Perms)
	}

	var bad record
	if err := json.Unmarshal([]byte(`{"id":"u2","perms":"-3"}`), &bad); !errors.Is(err, ErrNegative) {
		t.Fatalf("negative claim err = %v, want ErrNegative", err)
	}
}
