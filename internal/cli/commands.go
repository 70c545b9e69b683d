package cli

import (
	"fmt"

	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/shared/apperror"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fieldFlags binds one flag per record field.
type fieldFlags map[string]*string

var fieldFlagNames = map[string]string{
	employeeform.FieldFirstName:    "first-name",
	employeeform.FieldLastName:     "last-name",
	employeeform.FieldEmployeeCode: "code",
	employeeform.FieldContact:      "contact",
	employeeform.FieldDateOfBirth:  "dob",
	employeeform.FieldAddress:      "address",
}

func bindFieldFlags(cmd *cobra.Command) fieldFlags {
	ff := fieldFlags{}
	for _, field := range employeeform.Fields {
		ff[field] = cmd.Flags().String(fieldFlagNames[field], "", field)
	}
	return ff
}

// apply copies every flag the user set onto the form draft.
func (ff fieldFlags) apply(cmd *cobra.Command, form *employeeform.Controller) error {
	for _, field := range employeeform.Fields {
		if !cmd.Flags().Changed(fieldFlagNames[field]) {
			continue
		}
		if err := form.SetField(field, *ff[field]); err != nil {
			return err
		}
	}
	return nil
}

func newListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.close()
			records, err := s.store.LoadAll(cmd.Context())
			out := cmd.OutOrStdout()
			if err != nil {
				fmt.Fprintln(out, s.renderer.Error(s.store.Err()))
				return err
			}
			fmt.Fprintln(out, s.renderer.Grid(records))
			return nil
		},
	}
}

func newAddCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new employee",
		Args:  cobra.NoArgs,
	}
	ff := bindFieldFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer s.close()
		if _, err := s.store.LoadAll(cmd.Context()); err != nil {
			s.logger.Debug("preload before add failed", zap.Error(err))
		}
		if err := ff.apply(cmd, s.form); err != nil {
			return err
		}
		return s.submit(cmd)
	}
	return cmd
}

func newEditCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an existing employee; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
	}
	ff := bindFieldFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer s.close()
		ctx := cmd.Context()
		if _, err := s.store.LoadAll(ctx); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), s.renderer.Error(s.store.Err()))
			return err
		}

		rec, ok := s.store.Find(args[0])
		if !ok {
			var err error
			if rec, err = s.client.Get(ctx, args[0]); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), s.renderer.Error(errorMessage(err)))
				return err
			}
		}

		if err := s.form.Edit(rec); err != nil {
			return err
		}
		if err := ff.apply(cmd, s.form); err != nil {
			return err
		}
		return s.submit(cmd)
	}
	return cmd
}

func newDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.close()
			out := cmd.OutOrStdout()
			if err := s.client.Delete(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(out, s.renderer.Error(errorMessage(err)))
				return err
			}
			s.store.Remove(args[0])
			fmt.Fprintf(out, "Employee %s deleted\n", args[0])
			return nil
		},
	}
}

// submit sends the current draft and prints the outcome: the form with
// inline errors, a failure banner, or the banner and the patched grid.
func (s *session) submit(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	draft := s.form.Draft()

	state, err := s.form.Submit(cmd.Context(), draft)
	if errs := s.form.Errors(); !errs.Valid() {
		fmt.Fprint(out, s.renderer.Form(draft, errs))
		return err
	}
	if banner := s.renderer.Banner(state); banner != "" {
		fmt.Fprintln(out, banner)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, s.renderer.Grid(s.store.Records()))
	return nil
}

// errorMessage prefers the user-facing message of an AppError.
func errorMessage(err error) string {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Message
	}
	return err.Error()
}
