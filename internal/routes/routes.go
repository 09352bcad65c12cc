package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/audit"
	"github.com/BruksfildServices01/home-services/internal/auth"
	"github.com/BruksfildServices01/home-services/internal/catalog"
	"github.com/BruksfildServices01/home-services/internal/config"
	"github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/handlers"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
	"github.com/BruksfildServices01/home-services/internal/validators"
	ucAuth "github.com/BruksfildServices01/home-services/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/home-services/internal/usecase/booking"
	ucFeedback "github.com/BruksfildServices01/home-services/internal/usecase/feedback"
	ucProfile "github.com/BruksfildServices01/home-services/internal/usecase/profile"
)

// Dependencies are the singletons built by main.
type Dependencies struct {
	Config   *config.Config
	Logger   logging.Logger
	Users    user.Repository
	Bookings booking.Repository
	Feedback feedback.Repository
	Sessions *sessionstore.Store
	Audit    *audit.Dispatcher
	Catalog  []catalog.Service
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) error {
	cfg := deps.Config

	if err := validators.RegisterBindings(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestLogger(deps.Logger),
		metrics.Middleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	authn := middleware.NewAuthenticator(issuer, deps.Sessions)
	codec := booking.NewPriceCodec(cfg.CurrencySymbol)
	pageSet := pages.NewSet(cfg.FeedbackEnabled)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(deps.Users, deps.Sessions, issuer, deps.Audit, ucAuth.Options{
		BcryptCost:        cfg.BcryptCost,
		VerifyEmailDomain: cfg.VerifyEmailDomain,
	})
	loginUC := ucAuth.NewLogin(deps.Users, deps.Sessions, issuer, deps.Audit)
	logoutUC := ucAuth.NewLogout(deps.Sessions)

	homeUC := ucBooking.NewLoadHome(deps.Catalog)
	openDialogUC := ucBooking.NewOpenDialog(deps.Sessions, codec, cfg.Timezone)
	closeDialogUC := ucBooking.NewCloseDialog(deps.Sessions)
	submitBookingUC := ucBooking.NewSubmitBooking(deps.Bookings, deps.Users, deps.Sessions, deps.Audit, cfg.Timezone)
	listBookingsUC := ucBooking.NewListBookings(deps.Bookings, deps.Users, codec)
	cancelBookingUC := ucBooking.NewCancelBooking(deps.Bookings, listBookingsUC, deps.Audit)
	totalPriceUC := ucBooking.NewTotalPrice(deps.Bookings, codec)

	feedbackPageUC := ucFeedback.NewLoadPage(deps.Feedback, deps.Users)
	submitFeedbackUC := ucFeedback.NewSubmitFeedback(deps.Feedback, feedbackPageUC, deps.Audit)

	loadProfileUC := ucProfile.NewLoadProfile(deps.Users, deps.Bookings)
	updateProfileUC := ucProfile.NewUpdateProfile(deps.Users, deps.Sessions, deps.Audit)
	updateAvatarUC := ucProfile.NewUpdateAvatar(deps.Users, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, deps.Logger)
	homeHandler := handlers.NewHomeHandler(homeUC, openDialogUC, closeDialogUC, submitBookingUC, deps.Logger)
	bookingsHandler := handlers.NewBookingsHandler(listBookingsUC, cancelBookingUC, totalPriceUC, deps.Logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackPageUC, submitFeedbackUC, deps.Logger)
	profileHandler := handlers.NewProfileHandler(loadProfileUC, updateProfileUC, updateAvatarUC, deps.Logger)
	publicHandler := handlers.NewPublicHandler(deps.Catalog)

	// ======================================================
	// COMMAND TABLE
	// ======================================================
	table := pages.Table{
		{Page: pages.Index, Action: "register", Method: http.MethodPost, Path: "/api/auth/register", Handler: authHandler.Register},
		{Page: pages.Index, Action: "login", Method: http.MethodPost, Path: "/api/auth/login", Handler: authHandler.Login},
		{Page: pages.Any, Action: "logout", Method: http.MethodPost, Path: "/api/auth/logout", Auth: true, Handler: authHandler.Logout},

		{Page: pages.Home, Action: "init", Method: http.MethodGet, Path: "/api/home", Auth: true, Handler: homeHandler.Init},
		{Page: pages.Home, Action: "open_dialog", Method: http.MethodPost, Path: "/api/bookings/dialog", Auth: true, Handler: homeHandler.OpenDialog},
		{Page: pages.Home, Action: "close_dialog", Method: http.MethodDelete, Path: "/api/bookings/dialog", Auth: true, Handler: homeHandler.CloseDialog},
		{Page: pages.Home, Action: "submit_booking", Method: http.MethodPost, Path: "/api/bookings", Auth: true, Handler: homeHandler.Submit},

		{Page: pages.Bookings, Action: "list", Method: http.MethodGet, Path: "/api/bookings", Auth: true, Handler: bookingsHandler.List},
		{Page: pages.Bookings, Action: "cancel", Method: http.MethodPost, Path: "/api/bookings/:id/cancel", Auth: true, Handler: bookingsHandler.Cancel},
		{Page: pages.Bookings, Action: "total", Method: http.MethodGet, Path: "/api/bookings/total", Auth: true, Handler: bookingsHandler.Total},

		{Page: pages.Profile, Action: "load", Method: http.MethodGet, Path: "/api/profile", Auth: true, Handler: profileHandler.Load},
		{Page: pages.Profile, Action: "update", Method: http.MethodPut, Path: "/api/profile", Auth: true, Handler: profileHandler.Update},
		{Page: pages.Profile, Action: "avatar", Method: http.MethodPut, Path: "/api/profile/avatar", Auth: true, Handler: profileHandler.Avatar},
		{Page: pages.Profile, Action: "activity", Method: http.MethodGet, Path: "/api/profile/activity", Auth: true, Handler: profileHandler.Activity},
	}

	if cfg.FeedbackEnabled {
		table = append(table, pages.Table{
			{Page: pages.Feedback, Action: "list", Method: http.MethodGet, Path: "/api/feedback", Auth: true, Handler: feedbackHandler.List},
			{Page: pages.Feedback, Action: "submit", Method: http.MethodPost, Path: "/api/feedback", Auth: true, Handler: feedbackHandler.Submit},
			{Page: pages.Feedback, Action: "stats", Method: http.MethodGet, Path: "/api/feedback/stats", Auth: true, Handler: feedbackHandler.Stats},
			{Page: pages.Feedback, Action: "validate", Method: http.MethodPost, Path: "/api/feedback/validate", Auth: true, Handler: feedbackHandler.Validate},
		}...)
	}

	if err := table.Validate(); err != nil {
		return err
	}

	// ======================================================
	// PAGE BOOTSTRAP
	// ======================================================
	inits := map[pages.Page]handlers.PageInit{
		pages.Home: func(ctx context.Context, sess *user.Session) (any, error) {
			return homeUC.Execute(ctx, sess)
		},
		pages.Bookings: func(ctx context.Context, sess *user.Session) (any, error) {
			return listBookingsUC.Execute(ctx, sess, "all")
		},
		pages.Feedback: func(ctx context.Context, sess *user.Session) (any, error) {
			return feedbackPageUC.Execute(ctx, sess)
		},
		pages.Profile: func(ctx context.Context, sess *user.Session) (any, error) {
			profile, err := loadProfileUC.Execute(ctx, sess)
			if err != nil {
				return nil, err
			}
			stats, err := loadProfileUC.Stats(ctx, sess)
			if err != nil {
				return nil, err
			}
			activity, err := loadProfileUC.RecentActivity(ctx, sess)
			if err != nil {
				return nil, err
			}
			return gin.H{"profile": profile, "stats": stats, "activity": activity}, nil
		},
	}
	webHandler := handlers.NewWebHandler(pageSet, table, inits, deps.Logger)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", publicHandler.Health)
	r.GET("/metrics", metrics.Handler())
	r.GET("/api/services", publicHandler.Services)
	r.GET("/web/:page", authn.Optional(), webHandler.Page)
	r.GET("/web", authn.Optional(), webHandler.Page)

	protected := r.Group("", authn.Required())
	table.Register(r, protected)

	return nil
}
