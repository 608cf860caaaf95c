package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"garment-stock/feature/auth"

	"github.com/spf13/cobra"
)

// hashPasswordCmd prints a bcrypt hash for AUTH_PASSWORD_HASH.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash a password for AUTH_PASSWORD_HASH",
	Long:  `Reads a password from stdin and prints its bcrypt hash.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}

		hash, err := auth.HashPassword(strings.TrimRight(line, "\r\n"))
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hashPasswordCmd)
}
