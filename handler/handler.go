package handler

import (
	"net/http"
	"time"

	"github.com/air-examples/placeholder/api"
	"github.com/air-examples/placeholder/cfg"
	"github.com/air-gases/cacheman"
	"github.com/aofei/air"
)

var (
	a = air.Default

	getHeadMethods = []string{http.MethodGet, http.MethodHead}

	hourlyCachemanGas = cacheman.Gas(cacheman.GasConfig{
		Public:  true,
		MaxAge:  3600,
		SMaxAge: -1,
	})

	postClient = api.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
	)
)

func init() {
	a.FILE("/robots.txt", "robots.txt")
	a.FILES("/assets", a.CofferAssetRoot, hourlyCachemanGas)
}
