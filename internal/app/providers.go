package app

import (
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalog"
	"github.com/nguyentranbao-ct/catalog-console/internal/server"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"go.uber.org/fx"
)

func providers() fx.Option {
	return fx.Provide(
		catalog.NewClient,

		// one flag shared by the console (writer) and the display (reader)
		usecase.NewDirtyFlag,
		usecase.NewDisplayUsecase,
		usecase.NewConsoleUsecase,
		usecase.NewProductUsecase,

		server.NewHandler,
		server.NewSocketHandler,
	)
}
