package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/docchat-ai/docchat/app/core"
	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/logic/v1/process"
	"github.com/docchat-ai/docchat/pkg/types"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "document qa service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	process.NewProcess(app).Start()
	serve(app)

	return nil
}

// NewProcessCommand runs only the background jobs, no HTTP listener.
func NewProcessCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "background jobs only",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunProcess(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func RunProcess(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	p := process.NewProcess(app)
	p.Start()
	fmt.Println("process running")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	p.Stop()
	return nil
}

// NewInitCommand creates the built-in administrator account and prints
// its access token. Fails if the account already exists.
func NewInitCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "initialize the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInit(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func RunInit(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

	token, err := v1.NewAuthLogic(context.Background(), app).InitAdminUser(types.DEFAULT_APPID)
	if err != nil {
		return err
	}

	fmt.Println("admin access token:", token)
	return nil
}
