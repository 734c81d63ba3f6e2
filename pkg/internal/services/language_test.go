package services

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	viper.Set("language.enabled", true)
	t.Cleanup(func() {
		viper.Set("language.enabled", false)
	})

	assert.Equal(t, "en", DetectLanguage("The weather is lovely today and I am going for a walk in the park"))
	assert.Equal(t, "ru", DetectLanguage("Сегодня прекрасная погода, и я иду гулять в парк"))
	assert.Empty(t, DetectLanguage("   "))
}

func TestDetectLanguageDisabled(t *testing.T) {
	viper.Set("language.enabled", false)

	assert.Empty(t, DetectLanguage("The weather is lovely today"))
}
