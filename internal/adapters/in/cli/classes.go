package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"emperror.dev/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bnema/forcedeck/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/forcedeck/internal/app"
	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/domain"
)

// newClassesCmd creates the classes command.
func newClassesCmd(configPath *string) *cobra.Command {
	var creds credentialFlags

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List Apex classes of the org",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withKernel(*configPath, func(k *app.Kernel) error {
				return runListClasses(cmd.Context(), k.Org(), creds.resolve(k), cmd.OutOrStdout())
			})
		},
	}
	creds.register(cmd)

	return cmd
}

// newGetClassCmd creates the get-class command.
func newGetClassCmd(configPath *string) *cobra.Command {
	var (
		creds  credentialFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "get-class <name>",
		Short: "Download the body of an Apex class",
		Long: `Prints the body of an Apex class, or writes it to a file with --output.
The class id needed by deploy-class is printed to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(*configPath, func(k *app.Kernel) error {
				return runGetClass(cmd.Context(), k.Org(), creds.resolve(k), args[0], output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}
	creds.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the body to this file instead of stdout")

	return cmd
}

func runListClasses(ctx context.Context, svc in.OrgService, creds domain.Credentials, out io.Writer) error {
	if verr := domain.NewValidationError("missing credentials", domain.CheckCredentials(creds)); verr != nil {
		return verr
	}

	classes, total, err := svc.ListApexClasses(ctx, creds)
	if err != nil {
		return errors.WithMessage(err, "failed to list apex classes")
	}

	if len(classes) == 0 {
		return cliWriteLine(out, cliRenderMuted("No Apex classes found"))
	}

	if err := cliWriteLine(out, cliRenderTitle("Apex classes")); err != nil {
		return err
	}

	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		valid := "yes"
		if !c.IsValid {
			valid = "no"
		}
		rows = append(rows, []string{
			c.Name,
			c.ID,
			strconv.FormatFloat(c.APIVersion, 'f', 1, 64),
			c.Status,
			valid,
			c.LastModifiedDate,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.Border).
		Headers("NAME", "ID", "API", "STATUS", "VALID", "LAST MODIFIED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Theme.Header
			}
			return styles.Theme.Cell
		})

	if err := cliWriteLine(out, t.Render()); err != nil {
		return err
	}
	return cliWriteLine(out, cliRenderMeta("Total:", fmt.Sprintf("%d of %d", len(classes), total)))
}

func runGetClass(ctx context.Context, svc in.OrgService, creds domain.Credentials, name, output string, out, errOut io.Writer) error {
	if verr := domain.NewValidationError("missing credentials", domain.CheckCredentials(creds)); verr != nil {
		return verr
	}

	class, err := svc.GetApexClass(ctx, creds, name)
	if errors.Is(err, domain.ErrApexClassMissing) {
		return errors.Errorf("apex class %q not found", name)
	}
	if err != nil {
		return errors.WithMessage(err, "failed to fetch apex class")
	}

	if err := cliWriteLine(errOut, cliRenderMeta("Class id:", class.ID)); err != nil {
		return err
	}

	if output == "" {
		_, err := io.WriteString(out, class.Body)
		return err
	}
	if err := os.WriteFile(output, []byte(class.Body), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}
	return cliWriteLine(errOut, cliRenderSuccess("Saved "+output))
}
