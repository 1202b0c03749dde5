package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lintang/roadgraph/docs"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/kv"
	"lintang/roadgraph/pkg/osmparser"
	"lintang/roadgraph/pkg/server/rest"
	"lintang/roadgraph/pkg/server/rest/service"
	"lintang/roadgraph/pkg/spatialindex"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/exp/slog"
)

var (
	listenAddr = flag.String("listenaddr", "", "server listen address (default :5000)")
	mapFile    = flag.String("f", "", "openstreeetmap file buat road network graphnya (default solo_jogja.osm.pbf)")
	configFile = flag.String("config", "", "yaml config file, flag yang di set override isi file")
	algorithm  = flag.String("alg", "", "default shortest path algorithm: bfs, dijkstra, astar")
)

//	@title			navigatorx lintangbs API
//	@version		1.0
//	@description	road graph shortest path engine (bfs, dijkstra, astar) di atas openstreetmap

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("navigatorx stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (Config, error) {
	cfg := DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = ReadConfig(*configFile, cfg); err != nil {
			return cfg, err
		}
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *mapFile != "" {
		cfg.MapFile = *mapFile
	}
	if *algorithm != "" {
		cfg.DefaultAlgorithm = *algorithm
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg Config) error {
	// graph read-only setelah selesai di load, search boleh jalan paralel antar request
	g, err := osmparser.LoadGraph(ctx, cfg.MapFile)
	if err != nil {
		return err
	}

	db, err := kv.OpenInMemory()
	if err != nil {
		return err
	}
	kvDB := kv.NewKVDB(db, cfg.H3Resolution)
	defer kvDB.Close()
	if err := kvDB.CreateStreetKV(g); err != nil {
		return err
	}

	rtree := spatialindex.NewRtree(g)
	routing := routingalgorithm.NewRouteAlgorithm(g)
	defaultAlg, _ := routingalgorithm.ParseAlgorithm(cfg.DefaultAlgorithm)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), //The url pointing to API definition
	))

	navigatorSvc := service.NewNavigationService(g, routing, rtree, kvDB, cfg.SnapRadiusKm)
	rest.NavigatorRouter(r, navigatorSvc, m, defaultAlg)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", cfg.ListenAddr, "default_algorithm", defaultAlg.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
