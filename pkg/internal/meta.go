package pkg

import (
	"time"

	"github.com/spf13/viper"
)

const AppVersion = "1.0.0"

// SetDefaults registers the fallback of every setting, a missing
// settings file still gives a runnable development server.
func SetDefaults() {
	viper.SetDefault("bind", "0.0.0.0:8000")
	viper.SetDefault("grpc_bind", "0.0.0.0:7000")

	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.prefix", "yatube_")

	viper.SetDefault("paginator.page_size", 10)

	viper.SetDefault("cache.index_ttl", 20*time.Second)
	viper.SetDefault("cache.max_cost", 64<<20)

	viper.SetDefault("security.login_url", "/auth/login/")
	viper.SetDefault("security.cookie_name", "yatube_access_token")

	viper.SetDefault("storage.driver", "local")
	viper.SetDefault("storage.local_path", "uploads")
	viper.SetDefault("storage.public_url", "/media/")
	viper.SetDefault("storage.max_image_size", 5<<20)

	viper.SetDefault("language.enabled", true)

	viper.SetDefault("cleanup.images", "@every 60m")
}
