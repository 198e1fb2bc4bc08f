package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/housebanao/ops-console/internal/application/forms"
	"github.com/housebanao/ops-console/internal/application/gate"
	"github.com/housebanao/ops-console/internal/application/session"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/internal/infrastructure/state"
	"github.com/housebanao/ops-console/pkg/config"
	"github.com/housebanao/ops-console/pkg/logger"
)

// Modules todos los módulos de la consola, cableados contra el mismo
// cliente REST. La vista toma de aquí el listado y el asistente de cada
// sección.
type Modules struct {
	Customers  *forms.Module[entity.Customer]
	Partners   *forms.Module[entity.Partner]
	Transports *forms.Module[entity.Transport]
	Leads      *forms.Module[entity.Lead]
	BOQs       *forms.Module[entity.BOQ]
	Users      *forms.Module[entity.User]
}

func buildModules(api *rest.Client, opts forms.Options, log *logger.Logger) (*Modules, error) {
	customers, err := forms.NewCustomerModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	partners, err := forms.NewPartnerModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	transports, err := forms.NewTransportModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	leads, err := forms.NewLeadModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	boqs, err := forms.NewBOQModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	users, err := forms.NewAdminUserModule(api, opts, log)
	if err != nil {
		return nil, err
	}
	return &Modules{
		Customers:  customers,
		Partners:   partners,
		Transports: transports,
		Leads:      leads,
		BOQs:       boqs,
		Users:      users,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := state.Open(cfg.State)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de estado")
	}
	defer store.Close()

	api := rest.NewClient(cfg.API, log)
	sessions := session.NewManager(api, store, log)

	notify := func(notice string) {
		log.Warn().Str("notice", notice).Msg("aviso de módulo")
	}
	modules, err := buildModules(api, forms.Options{PageSize: cfg.API.PageSize, Notify: notify}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("construir módulos")
	}

	// Reutiliza la sesión persistida; si no hay (o expiró), intenta las
	// credenciales del entorno.
	sess, err := sessions.Current()
	if err != nil {
		log.Fatal().Err(err).Msg("leer sesión persistida")
	}
	if sess == nil {
		email, password := os.Getenv("CONSOLE_EMAIL"), os.Getenv("CONSOLE_PASSWORD")
		if email == "" {
			log.Info().Msg("sin sesión ni credenciales; nada que hacer")
			return
		}
		role := entity.Role(os.Getenv("CONSOLE_ROLE"))
		if role == "" {
			role = entity.RoleUser
		}
		sess, err = sessions.Login(ctx, session.Credentials{Email: email, Password: password, Role: role})
		if err != nil {
			log.Fatal().Err(err).Msg("login")
		}
	}
	log.Info().Str("email", sess.Email).Str("role", string(sess.Role)).Msg("sesión activa")

	// Primera pantalla tras el login: el listado de clientes, si el rol
	// puede verlo.
	if d := gate.Resolve("/customers", sess); d != gate.Allow {
		log.Warn().Str("decision", d.String()).Msg("sin acceso al listado de clientes")
		return
	}
	if err := modules.Customers.List.Load(ctx, "", 1); err != nil {
		log.Fatal().Err(err).Msg("cargar clientes")
	}
	for _, c := range modules.Customers.List.Rows() {
		log.Info().Str("id", c.ID).Str("company", c.CompanyName).Msg("cliente")
	}
	log.Info().Int("count", len(modules.Customers.List.Rows())).Msg("listado cargado")
}
