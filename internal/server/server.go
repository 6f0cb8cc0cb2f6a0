package server

import (
	"shop/internal/config"
	"shop/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Start はルートを登録してechoサーバーを起動する。
func Start(
	cfg config.Config,
	memberH *handler.MemberHandler,
	productH *handler.ProductHandler,
	adminProductH *handler.AdminProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) error {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	memberH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	adminProductH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)

	//アップロード済みの商品画像を配信する
	e.Static("/images/products", cfg.UploadDir)

	return e.Start(":" + cfg.Port)
}
