// Package cmd provides the root command and CLI setup for goldrun.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/goldrun/internal/adapter"
	"github.com/mouse-blink/goldrun/internal/controller"
	"github.com/mouse-blink/goldrun/internal/domain"
	m "github.com/mouse-blink/goldrun/internal/model"
)

var suiteConfigAdapter adapter.SuiteConfigAdapter
var expectStore adapter.ExpectStore
var execAdapter adapter.TestExecAdapter
var suiteRunner domain.Runner
var workflow domain.Workflow
var ui controller.UI

// parallelFlag is a root-level flag shared by commands that run tests.
var parallelFlag int

// timeoutFlag bounds a single test's execution in seconds.
var timeoutFlag int

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	suiteConfigAdapter = adapter.NewLocalSuiteConfigAdapter()
	expectStore = adapter.NewLocalExpectStore()
	execAdapter = adapter.NewLocalTestExecAdapter()
	suiteRunner = domain.NewRunner(execAdapter, expectStore)
	workflow = domain.NewWorkflow(
		suiteConfigAdapter,
		expectStore,
		ui,
		suiteRunner,
	)
}

const rootLongDescription = `Goldrun runs suites of expect tests: each test file is executed by the
suite's command, and the captured exit status, stdout, and stderr are
compared byte-for-byte against a stored .expect file next to the test.

Suites are defined in goldrun.yaml:

  suites:
    - name: core
      paths: ["tests/*.tcl"]
      cmd: "./interp {}"`

const runLongDescription = `Run the configured suites (default: all of them).

Failing and missing tests are reported with a colored tag; pass --diff
to see what changed and --save to accept the new output as the stored
expectation.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goldrun",
		Short: "Expect-file test runner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		IntVarP(
			&parallelFlag, parallelFlagName, "p",
			viper.GetInt(runParallelConfigKey),
			"number of parallel workers for test execution",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().IntVarP(&timeoutFlag, timeoutFlagName, "t", viper.GetInt(runTimeoutConfigKey), "per-test timeout in seconds")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), runTimeoutConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func configPath() m.Path {
	return m.Path(configFolderPath + "/" + configFileName)
}

// parseOnly maps the --only flag value to a category filter. An empty
// value means no filtering.
func parseOnly(value string) (*m.Category, error) {
	switch value {
	case "":
		return nil, nil
	case string(m.CategoryPass):
		cat := m.CategoryPass
		return &cat, nil
	case string(m.CategoryFail):
		cat := m.CategoryFail
		return &cat, nil
	case string(m.CategoryMiss):
		cat := m.CategoryMiss
		return &cat, nil
	}

	return nil, fmt.Errorf("invalid --only value %q (want pass, fail, or miss)", value)
}
