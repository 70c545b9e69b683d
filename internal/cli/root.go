// Package cli implements employeectl, a terminal front end for the
// employee API built on the form controller and record store.
package cli

import (
	"fmt"
	"net/http"
	"time"

	"go-employee-form/internal/app"
	"go-employee-form/internal/employeeclient"
	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session holds what every subcommand needs, built once per invocation.
type session struct {
	client   *employeeclient.Client
	store    *employeeform.Store
	form     *employeeform.Controller
	renderer *render.Renderer
	logger   *zap.Logger
}

func (s *session) close() {
	if s.form != nil {
		s.form.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}

type rootFlags struct {
	apiURL        string
	dobField      string
	addressPolicy string
	timeout       time.Duration
	theme         string
}

// NewRootCommand builds employeectl. httpClient may be nil.
func NewRootCommand(httpClient *http.Client, logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.L()
	}
	flags := &rootFlags{}
	sess := &session{logger: logger.Named("cli")}

	root := &cobra.Command{
		Use:           "employeectl",
		Short:         "Manage employee records",
		Long:          "employeectl lists, registers, edits and deletes employees against the employee REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.open(cmd, flags, httpClient)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api-url", "", "API root (env EMPLOYEE_API_URL)")
	pf.StringVar(&flags.dobField, "dob-field", "", "wire name of the date of birth: dob or doB (env EMPLOYEE_DOB_FIELD)")
	pf.StringVar(&flags.addressPolicy, "address-policy", "", "strict or lenient (env EMPLOYEE_ADDRESS_POLICY)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "HTTP timeout (env EMPLOYEE_HTTP_TIMEOUT)")
	pf.StringVar(&flags.theme, "theme", "", "YAML theme file (env EMPLOYEE_THEME)")

	root.AddCommand(
		newListCommand(sess),
		newAddCommand(sess),
		newEditCommand(sess),
		newDeleteCommand(sess),
	)
	return root
}

// open merges env config with explicitly set flags and wires the client,
// store, controller and renderer.
func (s *session) open(cmd *cobra.Command, flags *rootFlags, httpClient *http.Client) error {
	cfg, err := app.LoadClientConfig()
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("api-url") {
		cfg.API.BaseURL = flags.apiURL
	}
	if pf.Changed("dob-field") {
		cfg.API.DOBField = flags.dobField
	}
	if pf.Changed("timeout") {
		cfg.API.Timeout = flags.timeout
	}
	if pf.Changed("theme") {
		cfg.ThemePath = flags.theme
	}
	if pf.Changed("address-policy") {
		policy, err := employeeform.ParseAddressPolicy(flags.addressPolicy)
		if err != nil {
			return err
		}
		cfg.AddressPolicy = policy
	}

	theme, err := render.LoadTheme(cfg.ThemePath)
	if err != nil {
		return err
	}

	client, err := employeeclient.NewClient(cfg.API, httpClient, s.logger)
	if err != nil {
		return fmt.Errorf("configure client: %w", err)
	}

	s.client = client
	s.store = employeeform.NewStore(client, employeeform.DefaultErrorDisplay, s.logger)
	s.form = employeeform.NewController(
		employeeform.NewValidator(cfg.AddressPolicy),
		client,
		s.store,
		employeeform.DefaultOptions(),
		s.logger,
	)
	s.renderer = render.NewRenderer(theme)

	s.logger.Debug("session opened",
		zap.String("api_url", cfg.API.BaseURL),
		zap.String("dob_field", cfg.API.DOBField),
		zap.String("address_policy", string(cfg.AddressPolicy)),
	)
	return nil
}
