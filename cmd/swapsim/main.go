package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/solarcodion/code-challenge/internal/api"
	"github.com/solarcodion/code-challenge/internal/catalog"
	"github.com/solarcodion/code-challenge/internal/config"
	"github.com/solarcodion/code-challenge/internal/database"
	"github.com/solarcodion/code-challenge/internal/domain"
	"github.com/solarcodion/code-challenge/internal/export"
	"github.com/solarcodion/code-challenge/internal/pricefeed"
	"github.com/solarcodion/code-challenge/internal/resource"
	"github.com/solarcodion/code-challenge/internal/swapform"
	"github.com/solarcodion/code-challenge/internal/worker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "swapsim",
		Usage: "currency swap simulator",
		Commands: []*cli.Command{
			serveCommand(),
			tokensCommand(),
			quoteCommand(),
			swapCommand(),
			exportCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCatalogService(cfg config.Config) *catalog.Service {
	client := pricefeed.NewClient(cfg.PricesURL, cfg.PricesRetryBase, cfg.PricesRetryMax)
	return catalog.NewService(client, cfg.IconBaseURL)
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API (token catalog, quotes and resource CRUD)",
		Action: func(c *cli.Context) error {
			ctx := c.Context
			cfg := config.Load()

			var resourceSvc *resource.Service
			if cfg.DatabaseURL != "" {
				pool, err := database.Connect(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("connecting to database: %w", err)
				}
				defer pool.Close()

				migrationsSub, err := fs.Sub(migrationsFS, "migrations")
				if err != nil {
					return fmt.Errorf("creating migrations sub-fs: %w", err)
				}
				if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}

				resourceSvc = resource.NewService(resource.NewPgRepository(pool))
			} else {
				slog.Warn("DATABASE_URL not set, resource endpoints disabled")
			}

			cache := catalog.NewCache()
			catalogWorker := worker.NewCatalogWorker(newCatalogService(cfg), cache, cfg.CatalogRefresh)
			go catalogWorker.Run(ctx)

			srv := api.NewServer(cfg.HTTPPort, cache, resourceSvc)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("HTTP server: %w", err)
			case <-ctx.Done():
			}
			log.Println("Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server shutdown: %w", err)
			}

			log.Println("Shutdown complete")
			return nil
		},
	}
}

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokens",
		Usage: "list the priced token catalog",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			tokens, err := newCatalogService(cfg).Load(c.Context)
			if err != nil {
				return err
			}

			fmt.Printf("%-10s %-20s %s\n", "SYMBOL", "NAME", "PRICE")
			for _, t := range tokens {
				fmt.Printf("%-10s %-20s %g\n", t.Symbol, t.Name, t.UnitPrice())
			}
			return nil
		},
	}
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "derive the target amount for a token pair",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source token symbol", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target token symbol", Required: true},
			&cli.StringFlag{Name: "amount", Usage: "source amount", Value: "1"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			tokens, err := newCatalogService(cfg).Load(c.Context)
			if err != nil {
				return err
			}

			from, err := findToken(tokens, c.String("from"))
			if err != nil {
				return err
			}
			to, err := findToken(tokens, c.String("to"))
			if err != nil {
				return err
			}

			amount, ok := domain.ParseAmount(c.String("amount"))
			if !ok || amount.IsNegative() {
				return fmt.Errorf("invalid amount %q", c.String("amount"))
			}
			rate, ok := domain.Rate(from.UnitPrice(), to.UnitPrice())
			if !ok {
				return fmt.Errorf("no rate available for %s→%s", from.Symbol, to.Symbol)
			}

			fmt.Printf("%s %s = %s %s\n", c.String("amount"), from.Symbol,
				domain.FormatAmount(domain.Convert(amount, rate)), to.Symbol)
			fmt.Printf("1 %s ≈ %s %s\n", from.Symbol, domain.FormatAmount(rate), to.Symbol)
			return nil
		},
	}
}

func swapCommand() *cli.Command {
	return &cli.Command{
		Name:  "swap",
		Usage: "run a simulated swap through the interactive form",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source token symbol", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target token symbol", Required: true},
			&cli.StringFlag{Name: "amount", Usage: "source amount", Required: true},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			svc := newCatalogService(cfg)

			form := swapform.New(svc.Load, swapform.SimulatedExchanger{Delay: cfg.SettleDelay},
				swapform.Config{
					ReverseDelay:  cfg.ReverseDelay,
					ReverseSettle: cfg.ReverseSettle,
				})

			st := form.Load(c.Context)
			if len(st.Tokens) == 0 {
				return fmt.Errorf("token catalog is unavailable")
			}

			from, err := findToken(st.Tokens, c.String("from"))
			if err != nil {
				return err
			}
			to, err := findToken(st.Tokens, c.String("to"))
			if err != nil {
				return err
			}

			if _, err := form.SelectSourceToken(from); err != nil {
				return err
			}
			if _, err := form.SelectTargetToken(to); err != nil {
				return err
			}
			st, err = form.SetSourceAmount(c.String("amount"))
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", st.Rate)

			st, err = form.Submit(c.Context)
			if err != nil {
				return err
			}
			if st.Errors.General != "" {
				return fmt.Errorf("%s", st.Errors.General)
			}
			if st.Errors.SourceAmount != "" {
				return fmt.Errorf("%s", st.Errors.SourceAmount)
			}

			fmt.Println(st.SuccessMessage)
			form.DismissResult()
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the token catalog to an .xlsx report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "output file path"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			path := c.String("out")
			if path == "" {
				path = cfg.ExportPath
			}

			svc := export.NewService(newCatalogService(cfg), export.NewXLSXWriter(path))
			if err := svc.Export(c.Context); err != nil {
				return err
			}
			fmt.Printf("catalog report written to %s\n", path)
			return nil
		},
	}
}

func findToken(tokens []domain.Token, symbol string) (domain.Token, error) {
	tok, found := lo.Find(tokens, func(t domain.Token) bool { return t.Symbol == symbol })
	if !found {
		return domain.Token{}, fmt.Errorf("unknown token %q", symbol)
	}
	return tok, nil
}
