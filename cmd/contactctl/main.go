// Command contactctl exercises the contact relay from the client side:
// it formats and validates a submission exactly like the site form and,
// on request, posts it to a running relay.
package main

import (
	"errors"
	"fmt"
	"os"

	"consult-contact-relay/pkg/contactclient"
	"consult-contact-relay/pkg/validation"

	"github.com/spf13/cobra"
)

var (
	policyFlag string
	urlFlag    string
	form       validation.Submission
)

var rootCmd = &cobra.Command{
	Use:           "contactctl",
	Short:         "Format, validate and submit contact form entries",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var formatPhoneCmd = &cobra.Command{
	Use:   "format-phone <raw>",
	Short: "Print a phone number regrouped as 3-4-4",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), validation.FormatPhone(args[0]))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a submission without sending it",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := contactclient.New(urlFlag, contactclient.WithPhonePolicy(validation.ParsePhonePolicy(policyFlag)))
		_, res := client.Prepare(form)
		if !res.Valid {
			printFieldErrors(cmd, res.FieldErrors)
			return fmt.Errorf("submission is invalid")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate a submission and post it to the relay",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := contactclient.New(urlFlag, contactclient.WithPhonePolicy(validation.ParsePhonePolicy(policyFlag)))
		res, err := client.Submit(cmd.Context(), form)
		if err != nil {
			var ve *contactclient.ValidationError
			if errors.As(err, &ve) {
				printFieldErrors(cmd, ve.Result.FieldErrors)
				return fmt.Errorf("submission is invalid")
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func printFieldErrors(cmd *cobra.Command, errs []validation.FieldError) {
	for _, fe := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Field, fe.Message)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFlag, "phone-policy", string(validation.PhoneStrict), "phone check: strict or lenient")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "http://localhost:8080", "relay base URL")

	for _, c := range []*cobra.Command{validateCmd, submitCmd} {
		c.Flags().StringVar(&form.Name, "name", "", "submitter name")
		c.Flags().StringVar(&form.Phone, "phone", "", "phone number, any separators")
		c.Flags().StringVar(&form.Email, "email", "", "reply address")
		c.Flags().StringVar(&form.Message, "message", "", "inquiry text")
		c.Flags().BoolVar(&form.Agreement, "agree", false, "consent to personal data collection")
	}

	rootCmd.AddCommand(formatPhoneCmd, validateCmd, submitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
