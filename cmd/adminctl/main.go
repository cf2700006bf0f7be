// Command adminctl 管理员凭据的离线配置工具
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"techfest/internal/model"
	"techfest/internal/service"
)

func main() {
	if err := rootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "adminctl",
		Short:         "Provision the shared admin password",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.AddCommand(hashCmd(in), initCmd(in))
	return cmd
}

func hashCmd(in io.Reader) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Read a password from stdin and print its digest for ADMIN_PASSWORD_HASH",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(in)
			if err != nil {
				return err
			}
			digest, err := digestPassword(password, legacy)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "sha256", false, "Print a hex SHA-256 digest instead of bcrypt")
	return cmd
}

func initCmd(in io.Reader) *cobra.Command {
	var (
		dataDir string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write admin.json for the file storage driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(in)
			if err != nil {
				return err
			}
			path, err := writeAdminFile(dataDir, password, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Data directory of the file storage driver")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing admin.json")
	return cmd
}

// readPassword 读取第一行作为密码
func readPassword(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}

func digestPassword(password string, legacy bool) (string, error) {
	if legacy {
		return service.SHA256Hex(password), nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func writeAdminFile(dataDir, password string, force bool) (string, error) {
	path := filepath.Join(dataDir, "admin.json")
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	digest, err := digestPassword(password, false)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(model.AdminCredential{PasswordHash: digest}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
