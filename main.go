package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"chatapp-client/internal/events"
	"chatapp-client/internal/keyValue"
	"chatapp-client/internal/models"
	"chatapp-client/internal/services"
	"chatapp-client/internal/socket"
	"chatapp-client/internal/store"
)

const sessionTokenKey = "session_token"
const sessionTokenLifetime = time.Hour * 24 * 7 * 4 // 4 weeks

func setupLogger(cfg models.ConfigFile) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()

	outputs := []string{"stdout"}
	if cfg.LogToFile {
		outputs = append(outputs, "app.log")
	}
	config.OutputPaths = outputs

	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func readConfigFile() (models.ConfigFile, error) {
	var cfg models.ConfigFile

	configFile, err := os.Open("config.json")
	if err != nil {
		return cfg, err
	}
	defer configFile.Close()

	bytes, err := io.ReadAll(configFile)
	if err != nil {
		return cfg, err
	}

	err = json.Unmarshal(bytes, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupDebugServer(address string, st *store.Context, sugar *zap.SugaredLogger) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/debug/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/debug/store", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(st.Snapshot())
		if err != nil {
			sugar.Error(err)
			http.Error(w, "", http.StatusInternalServerError)
		}
	})

	go func() {
		sugar.Infof("Debug server is running on %s", address)
		if err := http.ListenAndServe(address, r); err != nil {
			sugar.Error(err)
		}
	}()
}

func main() {
	email := flag.String("email", "", "log in with this email before connecting")
	password := flag.String("password", "", "password for -email")
	flag.Parse()

	fmt.Println("Reading config file...")
	cfg, err := readConfigFile()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Setting up logger...")
	sugar, err := setupLogger(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	kv, err := keyValue.Open(cfg.CacheFile, sugar)
	if err != nil {
		sugar.Fatal(err)
	}
	defer kv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.NewContext(sugar)
	api := services.NewClient(cfg.ApiUrl, func() string { return kv.Get(sessionTokenKey) }, st, sugar)

	if *email != "" {
		token, err := api.Login(ctx, *email, *password)
		if err != nil {
			sugar.Fatal(err)
		}
		if err := kv.Set(sessionTokenKey, token, sessionTokenLifetime); err != nil {
			sugar.Fatal(err)
		}
	}

	sock := socket.New(cfg.SocketUrl, sugar)

	events.RegisterAll(sock, st, events.Hooks{
		SelfWentOnline: func() {
			sugar.Debug("Self user went online")
		},
	}, sugar)

	sock.On(socket.EventConnected, func(json.RawMessage) {
		token := kv.Get(sessionTokenKey)
		if token == "" {
			sugar.Warn("No session token, connection will stay unauthenticated")
			return
		}
		if services.TokenExpired(token, time.Now()) {
			sugar.Warn("Session token is expired, log in again with -email/-password")
			return
		}
		if err := sock.Authenticate(token); err != nil {
			sugar.Error(err)
		}
	})

	sugar.Infof("Connecting to %s", cfg.SocketUrl)
	if err := sock.Connect(ctx); err != nil {
		sugar.Fatal(err)
	}
	defer sock.Close()

	if cfg.DebugAddress != "" {
		setupDebugServer(cfg.DebugAddress, st, sugar)
	}

	<-ctx.Done()
	sugar.Info("Shutting down...")
}
