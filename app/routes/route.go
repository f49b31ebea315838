package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/configs"
	"github.com/vishubh/bizbilling/app/handlers"
	"github.com/vishubh/bizbilling/app/middlewares"
	"github.com/vishubh/bizbilling/app/repositories"
	"github.com/vishubh/bizbilling/app/services"
	"github.com/vishubh/bizbilling/app/utils/renderer"
	"github.com/vishubh/bizbilling/app/utils/sessions"
)

// NewRouter wires the repositories, services and handlers and mounts
// every route. Mutating endpoints sit behind CSRF protection; the token
// travels in the X-CSRFToken header for the JSON endpoints and in the
// form field for plain form posts.
func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) *mux.Router {
	render := renderer.New()
	store := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	cartSvc := services.NewCartService(store, productRepo)
	themeSvc := services.NewThemeService(store)
	pdfSvc := services.NewPDFService(env)
	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
		Company:  env.CompanyName,
	})
	whatsapp := services.NewWhatsAppClient(env.WhatsappPhoneNumberID, env.WhatsappAccessToken)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, customerRepo, productRepo, mailer, pdfSvc, whatsapp)

	homeHandler := handlers.NewHomeHandler(cartSvc, render)
	searchHandler := handlers.NewSearchAPIHandler(productRepo, render)
	cartHandler := handlers.NewCartHandler(cartSvc, render)
	themeHandler := handlers.NewThemeHandler(themeSvc, render)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceSvc, cartSvc, render)
	productHandler := handlers.NewProductHandler(productRepo, render)
	statsHandler := handlers.NewStatisticsHandler(invoiceSvc, render)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware)
	router.Use(csrf.Protect(
		keys.AuthKey,
		csrf.RequestHeader("X-CSRFToken"),
		csrf.CookieName("csrftoken"),
		csrf.Path("/"),
		csrf.Secure(env.AppEnv == "production"),
	))
	router.Use(middlewares.PageContextMiddleware(store, themeSvc))

	router.HandleFunc("/", homeHandler.Index).Methods("GET")

	router.HandleFunc("/api/search-products/", searchHandler.SearchProducts).Methods("GET")

	router.HandleFunc("/api/cart/", cartHandler.Get).Methods("GET")
	router.HandleFunc("/api/cart/add/{id}/", cartHandler.Add).Methods("POST")
	router.HandleFunc("/api/cart/remove/{id}/", cartHandler.Remove).Methods("POST")
	router.HandleFunc("/api/cart/quantity/{id}/", cartHandler.UpdateQuantity).Methods("POST")
	router.HandleFunc("/api/cart/discount/", cartHandler.SetDiscount).Methods("POST")
	router.HandleFunc("/api/cart/received/", cartHandler.SetReceivedAmount).Methods("POST")
	router.HandleFunc("/api/cart/clear/", cartHandler.Clear).Methods("POST")

	router.HandleFunc("/api/theme/toggle/", themeHandler.Toggle).Methods("POST")

	router.HandleFunc("/invoice/generate/", invoiceHandler.Generate).Methods("POST")
	router.HandleFunc("/invoice/{id}/", invoiceHandler.Detail).Methods("GET")
	router.HandleFunc("/invoice/{id}/pdf/", invoiceHandler.DownloadPDF).Methods("GET")
	router.HandleFunc("/invoice/{id}/email/", invoiceHandler.SendEmail).Methods("POST")
	router.HandleFunc("/invoice/{id}/whatsapp/", invoiceHandler.SendWhatsApp).Methods("POST")
	router.HandleFunc("/invoices/search/", invoiceHandler.Search).Methods("GET")

	router.HandleFunc("/products/", productHandler.List).Methods("GET")
	router.HandleFunc("/products/new/", productHandler.NewForm).Methods("GET")
	router.HandleFunc("/products/", productHandler.Create).Methods("POST")
	router.HandleFunc("/products/{id}/edit/", productHandler.EditForm).Methods("GET")
	router.HandleFunc("/products/{id}/", productHandler.Update).Methods("POST")
	router.HandleFunc("/products/{id}/delete/", productHandler.Delete).Methods("POST")

	router.HandleFunc("/statistics/", statsHandler.Dashboard).Methods("GET")

	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))

	return router
}
