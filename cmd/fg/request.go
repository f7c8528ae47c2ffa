package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Send the challenge request",
	Long: `Send the challenge request and print the simulated response.

The request carries your name, registration number, and email. All three
are required and the email must be valid. Identity flags default to the
values in .fgconfig.yaml.

Examples:
  fg request --reg-no REG12347
  fg request --name "Jane Roe" --reg-no REG12348 --email jane@example.com --json`,
	Args: cobra.NoArgs,
	RunE: runRequest,
}

var requestJSON bool

func init() {
	addIdentityFlags(requestCmd)
	requestCmd.Flags().BoolVar(&requestJSON, "json", false, "print the raw response JSON")
	rootCmd.AddCommand(requestCmd)
}

func runRequest(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	sess, err := e.newSession()
	if err != nil {
		return err
	}

	req := e.request()
	resp, err := sess.Request(commandContext(cmd), req)
	if err != nil {
		return err
	}

	if requestJSON {
		return printJSON(os.Stdout, resp)
	}
	return printResponse(os.Stdout, req, resp)
}

func printResponse(w io.Writer, req model.Request, resp *model.Response) error {
	data, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling response data: %w", err)
	}

	fmt.Fprintf(w, "%s %s\n", cli.Green("Request accepted for"), req.RegNo)
	fmt.Fprintf(w, "Problem:      %s\n", cli.Bold(resp.ProblemType.Title()))
	fmt.Fprintf(w, "Webhook:      %s\n", resp.Webhook)
	fmt.Fprintf(w, "Access token: %s\n", resp.AccessToken)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Data:")
	fmt.Fprintln(w, string(data))
	return nil
}
