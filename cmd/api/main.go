package main

import (
	"log"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/server"
	"shop/internal/upload"
	"shop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Product{},
		&model.ProductImage{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	memberRepo := infraRepo.NewMemberGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//画像ファイル保存先
	files := upload.NewFileStore(cfg.UploadDir)

	//Usecase生成
	memberUC := usecase.NewMemberUsecase(memberRepo, []byte(cfg.JWTSecret))
	productUC := usecase.NewProductUsecase(txManager, productRepo, imageRepo, files)
	orderUC := usecase.NewOrderUsecase(txManager, memberRepo, productRepo, orderRepo, imageRepo)
	cartUC := usecase.NewCartUsecase(txManager, memberRepo, cartRepo, cartItemRepo, orderUC)

	//Handler生成
	memberH := handler.NewMemberHandler(memberUC)
	productH := handler.NewProductHandler(productUC)
	adminProductH := handler.NewAdminProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	if err := server.Start(cfg, memberH, productH, adminProductH, cartH, orderH); err != nil {
		log.Fatal(err)
	}
}
