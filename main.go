package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/air-examples/placeholder/handler"
	"github.com/air-gases/defibrillator"
	"github.com/air-gases/limiter"
	"github.com/air-gases/logger"
	"github.com/air-gases/redirector"
	"github.com/aofei/air"
	"github.com/rs/zerolog/log"
)

var a = air.Default

func main() {
	a.ErrorHandler = errorHandler
	a.Gases = []air.Gas{
		logger.Gas(logger.GasConfig{}),
		defibrillator.Gas(defibrillator.GasConfig{}),
		redirector.WWW2NonWWWGas(redirector.WWW2NonWWWGasConfig{}),
		limiter.BodySizeGas(limiter.BodySizeGasConfig{
			MaxBytes: 1 << 20,
		}),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := a.Serve(); err != nil {
			log.Error().Err(err).
				Str("app_name", a.AppName).
				Msg("server error")
		}
	}()

	<-shutdownChan

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	a.Shutdown(ctx)
}

func errorHandler(err error, req *air.Request, res *air.Response) {
	if res.Written {
		return
	}

	if res.Status < http.StatusBadRequest {
		res.Status = http.StatusInternalServerError
	}

	m := http.StatusText(res.Status)
	if a.DebugMode {
		m = err.Error()
	}

	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		res.Header.Del("Cache-Control")
		res.Header.Del("ETag")
		res.Header.Del("Last-Modified")
	}

	res.Render(map[string]interface{}{
		"PageTitle": res.Status,
		"Error":     m,
	}, "error.html", "layouts/default.html")
}
