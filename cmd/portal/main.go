package main

import (
	"promoadmin/apps/portal"
	"promoadmin/cmd/portal/router"
	"promoadmin/internal"
	"promoadmin/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		portal.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
