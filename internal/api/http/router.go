package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Services bundles the handlers' dependencies for router assembly.
type Services struct {
	Account   *AccountHandler
	Directory *DirectoryHandler
	Checkout  *CheckoutHandler
}

// NewRouter assembles the full routing table: the /api surface, a JSON
// 404 for unmatched /api paths, and the SPA shell for everything else.
func NewRouter(svcs Services, staticDir string) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logging, Recovery)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/get-tools", svcs.Directory.GetTools).Methods(http.MethodGet)
	api.HandleFunc("/checkout", svcs.Checkout.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/update-score", svcs.Checkout.UpdateScore).Methods(http.MethodPost)
	api.HandleFunc("/my-tools", svcs.Directory.MyTools).Methods(http.MethodGet)
	api.HandleFunc("/profile", svcs.Account.Profile).Methods(http.MethodGet)
	api.HandleFunc("/signup", svcs.Account.Signup).Methods(http.MethodPost)
	api.HandleFunc("/login", svcs.Account.Login).Methods(http.MethodPost)
	api.PathPrefix("/").HandlerFunc(handleAPINotFound)

	r.PathPrefix("/").Handler(NewSPAHandler(staticDir))
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "Lendify is running",
	})
}

func handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	writeClientError(w, http.StatusNotFound, "API endpoint not found")
}
