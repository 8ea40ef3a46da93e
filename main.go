package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/foomo/notion-mcp/mcp"
	"github.com/foomo/notion-mcp/notion"
	"github.com/foomo/notion-mcp/notion/webhook"
	"github.com/foomo/notion-mcp/service"
)

func main() {
	// Define command line flags
	stdioMode := flag.Bool("stdio", true, "Run in stdio mode")
	httpAddr := flag.String("http", "", "HTTP server address (e.g., ':8080')")
	endpoint := flag.String("endpoint", "/mcp", "MCP endpoint path in HTTP mode")
	debug := flag.Bool("debug", false, "Enable debug logging")
	webhookSecret := flag.String("webhook-secret", os.Getenv("NOTION_WEBHOOK_SECRET"), "Verification token used to check webhook signatures")
	maxDepth := flag.Int("max-depth", 0, "Maximum block nesting rendered to markdown (0 for the default)")
	flag.Parse()

	l, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = l.Sync() }()

	token := os.Getenv("NOTION_TOKEN")
	if token == "" {
		token = os.Getenv("NOTION_API_KEY")
	}
	if token == "" {
		l.Fatal("NOTION_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := notion.New(token, notion.WithLogger(l.Named("notion")))
	s := mcp.NewServer(l, client, service.NewService(l.Named("service"), client, *maxDepth))

	if *httpAddr != "" {
		webhooks := webhook.NewHandler(l.Named("webhook"),
			webhook.WithVerificationToken(*webhookSecret),
			webhook.OnVerification(func(_ context.Context, token string) {
				l.Info("webhook subscription verification token received, restart with -webhook-secret set to it",
					zap.String("token", token))
			}),
		)
		httpServer := &http.Server{
			Addr:    *httpAddr,
			Handler: mcp.NewMcpHTTPSSEServer(ctx, l.Named("http"), s, webhooks, *endpoint, mcp.DefaultSSEServerConfig()),
		}
		go func() {
			<-ctx.Done()
			if err := httpServer.Shutdown(context.Background()); err != nil {
				l.Warn("failed to shut down HTTP server", zap.Error(err))
			}
		}()
		l.Info("starting MCP server", zap.String("addr", *httpAddr), zap.String("endpoint", *endpoint))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal("HTTP server failed", zap.Error(err))
		}
		return
	}

	if !*stdioMode {
		l.Info("no transport selected, falling back to stdio")
	}
	l.Info("starting MCP server in stdio mode")
	if err := server.ServeStdio(s); err != nil {
		l.Fatal("stdio server failed", zap.Error(err))
	}
}

// newLogger writes to stderr so stdio mode keeps stdout for the protocol
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
