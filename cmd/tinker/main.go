// Package main is the entry point for the Tinker interpreter.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinkerlang/tinker/pkg/api"
	"github.com/tinkerlang/tinker/pkg/harness"
	"github.com/tinkerlang/tinker/pkg/runtime"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "tinker SCRIPT",
	Short:        "Tinker scripting language interpreter",
	Args:         cobra.ExactArgs(1),
	RunE:         runScript,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP playground with a POST /run endpoint",
	RunE:  runServe,
}

var testCmd = &cobra.Command{
	Use:          "test SUITE",
	Short:        "Run a YAML script suite and report per-case results",
	Args:         cobra.ExactArgs(1),
	RunE:         runSuite,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("tinker version {{.Version}}\n")

	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8080, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(testCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScript reads and executes one script file. Lex and parse failures
// abort before any evaluation; an evaluation failure is reported after the
// output already produced by earlier statements.
func runScript(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	runner := runtime.NewRunner(os.Stdout)
	if _, err := runner.Run(string(source)); err != nil {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	port := envOrDefault("PORT", "8080")
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = fmt.Sprintf("%d", v)
	}

	host := envOrDefault("HOST", "0.0.0.0")
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	server := api.New()

	log.Printf("Tinker playground listening on %s", addr)
	return server.Listen(addr)
}

func runSuite(cmd *cobra.Command, args []string) error {
	suite, err := harness.Load(args[0])
	if err != nil {
		return err
	}
	passed, failed := suite.Run(os.Stdout)
	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, passed+failed)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
