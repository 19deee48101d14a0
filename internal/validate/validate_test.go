package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/validate"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"", 0, true}, // optional field
		{"3.499,90", 349990, true},
		{"3499,90", 349990, true},
		{"3499.90", 349990, true},
		{"3499", 349900, true},
		{"0,99", 99, true},
		{"0", 0, false},
		{"0,00", 0, false},
		{"-10", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		got, ok := validate.Price(tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "centavos for %q", tt.in)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"iStore do Zé", "istore-do-ze"},
		{"Loja  da   Maria", "loja-da-maria"},
		{"Açaí & Cia.", "acai-cia"},
		{"--Já formatado--", "ja-formatado"},
		{"UPPER", "upper"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validate.Slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestSlug(t *testing.T) {
	for _, good := range []string{"loja-demo", "a1", "istore-do-ze"} {
		_, ok := validate.Slug(good)
		assert.True(t, ok, good)
	}
	for _, bad := range []string{"", "Loja", "com espaço", "até", "a/b"} {
		_, ok := validate.Slug(bad)
		assert.False(t, ok, bad)
	}
}

func TestWhatsapp(t *testing.T) {
	_, ok := validate.Whatsapp("")
	assert.True(t, ok, "empty is optional")
	_, ok = validate.Whatsapp("5511999990000")
	assert.True(t, ok)
	for _, bad := range []string{"+5511999990000", "11 99999-0000", "123"} {
		_, ok = validate.Whatsapp(bad)
		assert.False(t, ok, bad)
	}
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2024, validate.Year("2024"))
	assert.Equal(t, 0, validate.Year(""))
	assert.Equal(t, 0, validate.Year("banana"))
	assert.Equal(t, 0, validate.Year("1200"))
}
