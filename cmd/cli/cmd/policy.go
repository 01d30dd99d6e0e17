// Package cmd - policy commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nutricalc/core/senior"
	"nutricalc/internal/config"
)

func newPolicyCmd() *cobra.Command {
	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect senior adjustment policies",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	policyCmd.AddCommand(newPolicyShowCmd())
	policyCmd.AddCommand(newPolicyValidateCmd())
	return policyCmd
}

func newPolicyShowCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active policy as HCL",
		Long: `Print the senior adjustment policy that calories would use: the file
given with --file, else calculation.policy_path from the config file, else the
built-in table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = config.Get().Calculation.PolicyPath
			}

			policy := senior.Default()
			if path != "" {
				p, err := senior.Load(path)
				if err != nil {
					return err
				}
				policy = p
			}

			_, err := cmd.OutOrStdout().Write(policy.Encode())
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "HCL policy file")
	return cmd
}

func newPolicyValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an HCL policy file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := senior.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "policy %s is valid: %d age bands, %d conditions\n",
				policy.Version, len(policy.AgeBands), len(policy.Conditions))
			return nil
		},
	}
}
