package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/spf13/cobra"

	"github.com/bnema/forcedeck/internal/app"
	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/domain"
)

// ErrDeployFailed is returned when the org rejected the new class body.
var ErrDeployFailed = errors.New("deployment failed")

type deployClassOptions struct {
	creds credentialFlags
	file  string
	json  bool
}

// newDeployClassCmd creates the deploy-class command.
func newDeployClassCmd(configPath *string) *cobra.Command {
	var opts deployClassOptions

	cmd := &cobra.Command{
		Use:   "deploy-class <class-id>",
		Short: "Replace the body of an Apex class",
		Long: `Compiles and saves a new body for an existing Apex class using a
Tooling API metadata container, then waits for the deploy job to finish.

Examples:
  forcedeck deploy-class 01p5g00000AbCdE --file AccountService.cls
  cat AccountService.cls | forcedeck deploy-class 01p5g00000AbCdE --file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readClassBody(opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return withKernel(*configPath, func(k *app.Kernel) error {
				return runDeployClass(cmd.Context(), k.Deploy(), opts.creds.resolve(k), args[0], body, opts.json, cmd.OutOrStdout())
			})
		},
	}

	opts.creds.register(cmd)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File holding the new class body, or - for stdin")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the deployment result as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readClassBody(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read class body")
	}
	return string(data), nil
}

func runDeployClass(ctx context.Context, svc in.DeployService, creds domain.Credentials, classID, body string, asJSON bool, out io.Writer) error {
	result, err := svc.DeployClassUpdate(ctx, classID, body, creds)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return errors.WithMessage(err, "cannot deploy")
		}
		var derr *domain.DeployError
		if errors.As(err, &derr) && derr.Details != nil {
			details, _ := json.Marshal(derr.Details)
			return errors.Errorf("%s (%s): %s", derr.Error(), derr.Phase, details)
		}
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else if err := printDeploymentResult(out, result); err != nil {
		return err
	}

	if !result.Success {
		return ErrDeployFailed
	}
	return nil
}

func printDeploymentResult(out io.Writer, result *domain.DeploymentResult) error {
	if result.Success {
		return cliWriteLine(out, cliRenderSuccess("Apex class updated successfully"))
	}

	if result.TimedOut {
		msg := fmt.Sprintf("Status check timed out after %d attempts (last status %s)", result.Attempts, result.Status)
		if err := cliWriteLine(out, cliRenderWarning(msg)); err != nil {
			return err
		}
		if result.RequestID != "" {
			return cliWriteLine(out, cliRenderMeta("Request:", result.RequestID))
		}
		return nil
	}

	if err := cliWriteLine(out, cliRenderError(fmt.Sprintf("Deployment %s: %s", result.Status, result.ErrorMessage))); err != nil {
		return err
	}

	if !result.CompilerErrors.IsZero() {
		raw, err := json.Marshal(result.CompilerErrors)
		if err != nil {
			return err
		}
		if err := cliWriteLine(out, cliRenderMeta("Compiler errors:", string(raw))); err != nil {
			return err
		}
	}

	for _, f := range result.ComponentFailures {
		loc := fmt.Sprintf("%v:%v", valueOrDash(f.LineNumber), valueOrDash(f.ColumnNumber))
		line := fmt.Sprintf("  %s %s %s", cliRenderMuted(loc), f.ProblemType, strings.TrimSpace(f.Problem))
		if err := cliWriteLine(out, line); err != nil {
			return err
		}
	}
	return nil
}

func valueOrDash(v any) any {
	if v == nil {
		return "-"
	}
	return v
}
