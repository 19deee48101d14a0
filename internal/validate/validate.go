package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reSlug  = regexp.MustCompile(`^[a-z0-9-]+$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone = regexp.MustCompile(`^[0-9]{10,15}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the registration length window (bcrypt caps input at 72).
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

// Slug validates a storefront slug: lowercase letters, digits and hyphens.
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, reSlug.MatchString(s)
}

// ID validates a simple resource identifier (product/shop ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Whatsapp validates a phone in international digits-only form, as wa.me
// expects it. Empty is allowed (the field is optional).
func Whatsapp(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePhone.MatchString(s)
}

// URLField validates an optional http(s) URL. Empty is allowed.
func URLField(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return s, true
}

// Notes caps the free-text observations field.
func Notes(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 500
}

// Price parses a price in reais ("3.499,90", "3499.90" or "3499") into
// centavos. Empty means no price. Zero and negatives are rejected.
func Price(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	// Accept pt-BR formatting: thousands dots, decimal comma.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	cents := int64(v*100 + 0.5)
	if cents <= 0 {
		return 0, false
	}
	return cents, true
}

// Year parses a catalog year query param; zero means unselected.
func Year(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1900 || n > 2100 {
		return 0
	}
	return n
}

// Slugify derives a slug from a shop name, the same way the onboarding form
// suggests one: lowercase, accents stripped, runs of anything else collapsed
// to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if mapped := deaccent(r); mapped != 0 {
				b.WriteRune(mapped)
			} else if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteRune('-')
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func deaccent(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'í', 'ì', 'î', 'ï':
		return 'i'
	case 'ó', 'ò', 'ô', 'õ', 'ö':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	}
	return 0
}
