package http

import (
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer(pages *cache.PageCache) *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		UnescapePath:          true,
		ServerHeader:          "Hypernet.Yatube",
		AppName:               "Hypernet.Yatube",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             int(services.MaxImageSize()) + 1<<20,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
		ErrorHandler:          exts.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodDelete,
			fiber.MethodOptions,
		}, ","),
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
	}))
	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.Logger,
	}))
	app.Use(exts.AuthMiddleware([]byte(viper.GetString("security.jwt_secret"))))

	// Local uploads are served by ourselves, remote stores bring their own public url.
	if prefix := viper.GetString("storage.public_url"); strings.HasPrefix(prefix, "/") &&
		lo.Contains([]string{"", "local"}, viper.GetString("storage.driver")) {
		root := viper.GetString("storage.local_path")
		app.Static(prefix, lo.Ternary(len(root) > 0, root, storage.DefaultLocalPath))
	}

	admin.MapControllers(app, "/admin", pages)
	api.MapAPIs(app, "", pages)

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *App) Shutdown() error {
	return v.app.Shutdown()
}
