// Package messagepkg provides the localized user facing messages.
package messagepkg

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	frtranslations "github.com/go-playground/validator/v10/translations/fr"
)

// Message keys.
const (
	KeyPasswordLength  = "error.user-password-length"
	KeyEmailRequired   = "error.user-email-required"
	KeySinceDateFormat = "error.since-date-format"
	KeyUntilDateFormat = "error.until-date-format"
)

var catalogs = map[string]map[string]string{
	"en": {
		KeyPasswordLength:  "The password must be between 6 and 255 characters long",
		KeyEmailRequired:   "The email is required",
		KeySinceDateFormat: "Wrong since date format, expected yyyy-m-dd",
		KeyUntilDateFormat: "Wrong until date format, expected yyyy-m-dd",
	},
	"fr": {
		KeyPasswordLength:  "Le mot de passe doit contenir entre 6 et 255 caractères",
		KeyEmailRequired:   "L'email est obligatoire",
		KeySinceDateFormat: "Format de la date since invalide, attendu aaaa-m-jj",
		KeyUntilDateFormat: "Format de la date until invalide, attendu aaaa-m-jj",
	},
}

// New returns the translator for locale loaded with the application messages.
func New(locale string) (ut.Translator, error) {
	fallback := en.New()
	uni := ut.New(fallback, fallback, fr.New())

	for loc, messages := range catalogs {
		trans, _ := uni.GetTranslator(loc)

		for key, text := range messages {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("adding message %s for %s: %w", key, loc, err)
			}
		}
	}

	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	return trans, nil
}

// Get returns the message for key, or key itself when it is unknown.
func Get(trans ut.Translator, key string) string {
	msg, err := trans.T(key)
	if err != nil {
		return key
	}

	return msg
}

// RegisterValidatorTranslations registers the default validator messages of
// the translator locale on v.
func RegisterValidatorTranslations(v *validator.Validate, trans ut.Translator) error {
	switch trans.Locale() {
	case "fr":
		return frtranslations.RegisterDefaultTranslations(v, trans)
	default:
		return entranslations.RegisterDefaultTranslations(v, trans)
	}
}
