package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jvlp/md-parser/api"
	"github.com/jvlp/md-parser/stream"
	"github.com/jvlp/md-parser/tmpstore"
	"github.com/jvlp/md-parser/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	configPath := pflag.StringP("config", "c", ".", "directory containing app.env")
	pflag.Parse()

	// with a file argument the program acts as a one-shot driver:
	// tokenize the file to stdout and exit
	if args := pflag.Args(); len(args) > 0 {
		runFile(args[0])
		return
	}

	// reading .env config file
	config, err := util.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	store := tmpstore.NewStore(&config)

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	runGinServer(ctx, waitGroup, config, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// runFile tokenizes a single file and prints the per-line token streams.
func runFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("cannot open input file")
	}
	defer file.Close()

	sink := &stream.WriterSink{W: os.Stdout}

	if err := stream.Run(context.Background(), file, sink); err != nil {
		log.Fatal().Err(err).Msg("failed to tokenize input")
	}
}

func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store tmpstore.Store,
) {
	service, err := api.NewService(config, store)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		log.Info().Msg("tokenizer server is stopped")

		return err
	})
}
