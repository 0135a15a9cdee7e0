package crypt

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// A fixed 32-byte key for tests.
var testKey = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func TestNew_badKeys(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"not base64":     "!!!not-base64!!!",
		"too short":      base64.StdEncoding.EncodeToString([]byte("shortkey")),
		"too long":       base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 33))),
		"31 bytes":       base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 31))),
	}

	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(key); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got: %v", err)
			}
		})
	}
}

func TestRoundtrip(t *testing.T) {
	codec, err := New(testKey)
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}

	tests := []string{
		"",
		"a",
		"refresh-token-value",
		strings.Repeat("long", 500),
		"unicode: éè€ ✓",
	}

	for _, plaintext := range tests {
		encrypted, err := codec.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("error encrypting %q: %v", plaintext, err)
		}

		decrypted, err := codec.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("error decrypting %q: %v", plaintext, err)
		}
		if decrypted != plaintext {
			t.Errorf("roundtrip mismatch, got: %q, want: %q", decrypted, plaintext)
		}
	}
}

// The stored bytes must always be at least nonce(12) + tag(16) long, even
// for an empty plaintext. The gateway relies on that split when decrypting.
func TestEncrypt_wireFormat(t *testing.T) {
	codec, err := New(testKey)
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}

	encrypted, err := codec.Encrypt("")
	if err != nil {
		t.Fatalf("error encrypting: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if len(raw) < 28 {
		t.Errorf("sealed output too short: %d bytes, want at least 28", len(raw))
	}
}

func TestEncrypt_noncesDiffer(t *testing.T) {
	codec, err := New(testKey)
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}

	a, err := codec.Encrypt("same input")
	if err != nil {
		t.Fatalf("error encrypting: %v", err)
	}
	b, err := codec.Encrypt("same input")
	if err != nil {
		t.Fatalf("error encrypting: %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical output")
	}
}

func TestDecrypt_errors(t *testing.T) {
	codec, err := New(testKey)
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}

	valid, err := codec.Encrypt("value")
	if err != nil {
		t.Fatalf("error encrypting: %v", err)
	}

	// Corrupt the last byte of the tag.
	raw, _ := base64.StdEncoding.DecodeString(valid)
	raw[len(raw)-1] ^= 0xff
	corrupted := base64.StdEncoding.EncodeToString(raw)

	tests := map[string]struct {
		input string
		want  error // nil means any non-nil error is acceptable
	}{
		"not base64":     {input: "%%%"},
		"too short":      {input: base64.StdEncoding.EncodeToString([]byte("abc")), want: ErrCiphertextTooShort},
		"bad tag":        {input: corrupted},
		"wrong key data": {input: base64.StdEncoding.EncodeToString(make([]byte, 40))},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decrypt(tc.input)
			if err == nil {
				t.Fatal("expected an error but did not get one")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("expected error %v, got: %v", tc.want, err)
			}
		})
	}
}

// Two codecs with different keys must not be able to read each other's
// output.
func TestDecrypt_differentKey(t *testing.T) {
	codecA, err := New(testKey)
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}
	codecB, err := New(base64.StdEncoding.EncodeToString([]byte("fedcba9876543210fedcba9876543210")))
	if err != nil {
		t.Fatalf("error creating codec: %v", err)
	}

	encrypted, err := codecA.Encrypt("secret")
	if err != nil {
		t.Fatalf("error encrypting: %v", err)
	}
	if _, err := codecB.Decrypt(encrypted); err == nil {
		t.Error("expected decryption with the wrong key to fail")
	}
}
