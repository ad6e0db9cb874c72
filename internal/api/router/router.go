package router

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	_ "github.com/RoyceAzure/lab/megano/docs"
	"github.com/RoyceAzure/lab/megano/internal/api"
	m "github.com/RoyceAzure/lab/megano/internal/api/middleware"
	"github.com/RoyceAzure/lab/megano/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Deps router 需要的非 handler 依賴
type Deps struct {
	Sessions      service.ISessionService
	Cookie        *m.SessionCookie
	SignInLimiter ratelimit.Limiter
	MediaRoot     string
	MediaURL      string
}

func SetupRouter(server *api.Server, deps Deps, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// 上傳的圖片
	if deps.MediaRoot != "" {
		prefix := "/" + strings.Trim(deps.MediaURL, "/") + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(deps.MediaRoot))))
	}

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Use(m.SessionMiddleware(deps.Sessions, deps.Cookie, logger))

		// 帳號
		r.Group(func(r chi.Router) {
			if deps.SignInLimiter != nil {
				r.Use(m.RateLimitMiddleware(deps.SignInLimiter, logger))
			}
			r.Post("/sign-in", server.AuthHandler.SignIn)
			r.Post("/sign-up", server.AuthHandler.SignUp)
		})
		r.Post("/sign-out", server.AuthHandler.SignOut)

		// 商品目錄, 不需登入
		r.Get("/catalog", server.CatalogHandler.Catalog)
		r.Get("/product/{id}", server.CatalogHandler.Product)
		r.Get("/tags", server.CatalogHandler.Tags)
		r.Get("/tags/{id}", server.CatalogHandler.Tag)
		r.Get("/categories", server.CatalogHandler.Categories)
		r.Get("/products/popular", server.CatalogHandler.Popular)
		r.Get("/products/limited", server.CatalogHandler.Limited)
		r.Get("/sales", server.CatalogHandler.Sales)
		r.Get("/banners", server.CatalogHandler.Banners)

		// 購物車跟著 session
		r.Get("/basket", server.BasketHandler.Get)
		r.Post("/basket", server.BasketHandler.Add)
		r.Delete("/basket", server.BasketHandler.Remove)

		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Get("/profile", server.ProfileHandler.Get)
			r.Post("/profile", server.ProfileHandler.Update)
			r.Post("/profile/password", server.ProfileHandler.ChangePassword)
			r.Post("/profile/avatar", server.ProfileHandler.Avatar)

			r.Post("/product/{id}/review", server.CatalogHandler.AddReview)

			r.Get("/orders", server.OrderHandler.List)
			r.Post("/orders", server.OrderHandler.Create)
			r.Get("/order/{id}", server.OrderHandler.Get)
			r.Post("/order/{id}", server.OrderHandler.Update)
			r.Get("/history-order", server.OrderHandler.History)

			r.Post("/payment/{id}", server.PaymentHandler.Pay)
			r.Post("/payment-someone", server.PaymentHandler.PaySomeone)
			r.Get("/progress-payment/{id}", server.PaymentHandler.Progress)
		})
	})
	return r
}

// PrintRoutes 列出路由樹
func PrintRoutes(w io.Writer, r chi.Routes) error {
	return chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Fprintf(w, "%-7s %s\n", method, route)
		return nil
	})
}
