package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/goldrun/internal/domain"
)

var runDiffFlag bool
var runOnlyFlag string
var runSaveFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suites...]",
		Short: "Run expect test suites",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			only, err := parseOnly(runOnlyFlag)
			if err != nil {
				return err
			}

			problems, err := workflow.Run(context.Background(), domain.RunArgs{
				Config:   configPath(),
				Suites:   args,
				Only:     only,
				ShowDiff: runDiffFlag,
				Save:     runSaveFlag,
				Threads:  viper.GetInt(runParallelConfigKey),
				Timeout:  time.Duration(viper.GetInt64(runTimeoutConfigKey)) * time.Second,
			})
			if err != nil {
				return err
			}

			if problems > 0 {
				return fmt.Errorf("%d test(s) need attention", problems)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runDiffFlag, diffFlagName, "d", false, "show a diff for failing tests and the generated output for missing ones")
	cmd.Flags().StringVarP(&runOnlyFlag, onlyFlagName, "o", "", "only report tests in this category (pass, fail, miss)")
	cmd.Flags().BoolVarP(&runSaveFlag, saveFlagName, "s", false, "save generated output as the new expectation for failing and missing tests")
}
