package main

import (
	"io"
	"os"

	"github.com/Alia5/i3ctransfer/internal/cmd"
	"github.com/Alia5/i3ctransfer/internal/config"
	"github.com/Alia5/i3ctransfer/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cli config.CLI
	parser, err := config.NewParser(&cli, config.FindUserConfig(args))
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build command line parser: " + err.Error() + "\n")
		return cmd.ExitUsage
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	logger, rawLogger, closeFiles, err := log.Setup(cli.Log, os.Stdout, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return cmd.ExitUsage
	}
	defer closeAll(closeFiles)

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	if err := ctx.Run(); err != nil {
		logger.Error("i3ctransfer failed", "error", err)
		return cmd.ExitCode(err)
	}
	return cmd.ExitOK
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
