package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blogclient/config"
	"blogclient/internal/adapter/gateway"
	"blogclient/internal/app"
	"blogclient/internal/domain"
	"blogclient/internal/infrastructure/cache"
	"blogclient/internal/infrastructure/hint"
	"blogclient/internal/session"
	"blogclient/internal/usecase"
	"blogclient/utils/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"api_base_url", cfg.APIBaseURL,
		"posts_fresh_for", cfg.PostsFreshFor,
		"auth_user_fresh_for", cfg.AuthUserFreshFor)

	// Infrastructure
	queryCache := cache.New(cfg.PostsFreshFor)
	hints := hint.NewFileStore(cfg.HintPath)
	gw := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, log)
	assets := gateway.NewAssetResolver(cfg.AssetsBaseURL)
	sessions := session.NewStore()

	// Usecases
	resolver := usecase.NewResolveSession(gw, queryCache, hints, sessions, cfg.AuthUserFreshFor, log)
	guard := usecase.NewGuard(resolver, sessions, hints, log)
	listPosts := usecase.NewListPosts(gw, queryCache, cfg.PostsFreshFor, log)

	// App shell
	router := app.NewRouter(guard, log,
		app.Route{Path: app.PathHome},
		app.Route{Path: app.PathLogin},
		app.Route{Path: app.PathRegister},
		app.Route{Path: app.PathUnauthorized},
		app.Route{Path: app.PathProfile, AllowedRoles: []string{domain.RoleUser, domain.RoleAdmin}},
	)
	shell, cleanup := app.NewShell(router, sessions, renderResolution)
	defer cleanup()

	// Resolve the session before the first render.
	if _, err := resolver.Execute(ctx); err != nil {
		slog.WarnContext(ctx, "continuing without a session", "error", err)
	}

	path := app.PathHome
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	res := shell.Navigate(ctx, path)
	if res.Outcome == app.OutcomeRender && res.Path == app.PathHome {
		renderFeed(ctx, listPosts, assets)
	}
}

func renderResolution(res app.Resolution) {
	switch res.Outcome {
	case app.OutcomeLoading:
		fmt.Println("Loading...")
	case app.OutcomeRedirect:
		fmt.Printf("-> %s (from %s)\n", res.Path, res.From)
	case app.OutcomeRender:
		fmt.Printf("== %s ==\n", res.Path)
	}
}

func renderFeed(ctx context.Context, listPosts *usecase.ListPosts, assets *gateway.AssetResolver) {
	posts, err := listPosts.Execute(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load feed", "error", err)
		fmt.Println("Something went wrong, please try again")
		return
	}

	if len(posts) == 0 {
		fmt.Println("No posts at the moment")
		return
	}

	for _, post := range posts {
		fmt.Printf("%s [%s] by %s\n", post.Title, post.Category, post.User.Name)
		fmt.Printf("  %s\n", assets.PostImageURL(post.Image))
	}
}
