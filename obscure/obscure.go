// Package obscure is the stock string transform behind save tokens: a
// fixed-key XOR stream wrapped in standard Base64. Reversible and
// tamper-tolerant, nothing more; this is not a security boundary.
package obscure

import "encoding/base64"

const DefaultKey = "blackjack-lite"

type Codec struct {
	key []byte
}

func New(key string) *Codec {
	return &Codec{key: []byte(key)}
}

func Default() *Codec {
	return New(DefaultKey)
}

// Obscure turns plain text into a copyable token. Empty in, empty out.
func (c *Codec) Obscure(text string) string {
	if text == "" {
		return ""
	}
	data := []byte(text)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return base64.StdEncoding.EncodeToString(out)
}

// Reveal reverses Obscure. Input that is not one of our tokens yields
// "" rather than an error, so callers can fall back to treating the
// raw input as plain text.
func (c *Codec) Reveal(token string) string {
	if token == "" {
		return ""
	}
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ""
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return string(out)
}

// IsToken reports whether text looks like one of our tokens.
func (c *Codec) IsToken(text string) bool {
	if text == "" {
		return false
	}
	data, err := base64.StdEncoding.DecodeString(text)
	return err == nil && len(data) > 0
}
