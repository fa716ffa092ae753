package imagetext

import (
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the system locale cannot be detected.
const DefaultLocale = "en-US"

// DetectLocale returns the BCP 47 tag of the system locale, or
// DefaultLocale when it is unset or not a valid tag.
func DetectLocale() string {
	raw, err := jibber_jabber.DetectIETF()
	if err != nil {
		Logger().Warn("locale detection failed, using default", "default", DefaultLocale, "err", err)
		return DefaultLocale
	}
	tag, ok := normalizeLocale(raw)
	if !ok {
		Logger().Warn("unusable system locale, using default", "locale", raw, "default", DefaultLocale)
		return DefaultLocale
	}
	return tag
}

// normalizeLocale canonicalizes a locale tag such as "pt_BR" to "pt-BR".
// The POSIX locales and undetermined tags are rejected.
func normalizeLocale(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "C" || raw == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}
