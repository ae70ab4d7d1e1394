// Package roundid generates identifiers for game rounds.
//
// IDs are UUIDv7 values encoded TypeID-style as 26 lowercase characters of
// Crockford base32, so they sort by creation time and are safe to paste into
// log searches.
package roundid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford base32, lowercase, without i, l, o, u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID.
const Length = 26

// Generator produces round IDs. A nil random source uses crypto/rand.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading random bits from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new round ID.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate round ID: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as a 26-character base32 string. The 128 bits are
// left-padded with two zero bits to fill 130 bits, so the first character is
// always 0-7.
func Encode(id uuid.UUID) string {
	out := make([]byte, Length)
	for i := range out {
		var v byte
		for j := 0; j < 5; j++ {
			v <<= 1
			pos := i*5 + j - 2
			if pos >= 0 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks that s is a well-formed round ID.
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}
