package cmd

import (
	"io"
	"log/slog"

	"github.com/Alia5/i3ctransfer/i3cdev"
	"github.com/Alia5/i3ctransfer/internal/log"
	"github.com/Alia5/i3ctransfer/pec"
	"github.com/Alia5/i3ctransfer/xfer"

	"github.com/alecthomas/kong"
)

type Transfer struct {
	Device  string      `short:"d" help:"I3C device node to use (e.g. /dev/i3c-0-4cc0000000)" required:"" env:"I3CTRANSFER_DEVICE"`
	PEC     bool        `short:"p" name:"pec" help:"Append PEC to write transfers" env:"I3CTRANSFER_PEC"`
	Address pec.Address `short:"a" name:"addr-dynamic" help:"Target dynamic address used for PEC calculation" default:"0x70" env:"I3CTRANSFER_ADDR_DYNAMIC"`
	Read    []string    `short:"r" help:"Read <length> bytes. Repeatable." sep:"none" placeholder:"LEN"`
	Write   []string    `short:"w" help:"Write a comma-separated byte list. Repeatable." sep:"none" placeholder:"B0,B1,..."`
}

// Run is called by Kong when the transfer command is executed.
func (t *Transfer) Run(kctx *kong.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	ops := t.Ops(kctx.Path)
	if len(ops) == 0 {
		return xfer.ErrEmptyBatch
	}

	dev, err := i3cdev.Open(t.Device)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Warn("failed to close device", "device", t.Device, "error", err)
		}
	}()

	return t.Execute(ops, dev, kctx.Stdout, logger, rawLogger)
}

// Ops returns the --read and --write values in command-line order. Values
// that did not come from the command line (config files, env) follow, reads
// first.
func (t *Transfer) Ops(path []*kong.Path) []xfer.Op {
	var ops []xfer.Op
	var nr, nw int
	for _, p := range path {
		if p.Flag == nil || p.Resolved {
			continue
		}
		switch p.Flag.Name {
		case "read":
			if nr < len(t.Read) {
				ops = append(ops, xfer.Op{Direction: xfer.Read, Spec: t.Read[nr]})
				nr++
			}
		case "write":
			if nw < len(t.Write) {
				ops = append(ops, xfer.Op{Direction: xfer.Write, Spec: t.Write[nw]})
				nw++
			}
		}
	}
	for _, s := range t.Read[nr:] {
		ops = append(ops, xfer.Op{Direction: xfer.Read, Spec: s})
	}
	for _, s := range t.Write[nw:] {
		ops = append(ops, xfer.Op{Direction: xfer.Write, Spec: s})
	}
	return ops
}

// Execute builds the batch and submits it through sub, reporting to out.
func (t *Transfer) Execute(ops []xfer.Op, sub xfer.Submitter, out io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	b := xfer.NewBuilder(xfer.WriteOptions{PEC: t.PEC, Address: t.Address}, out, logger)
	batch, err := b.Build(ops)
	if err != nil {
		return err
	}
	defer batch.Release()

	logger.Info("Submitting transfers", "device", t.Device, "count", len(batch), "pec", t.PEC, "addr", t.Address)
	if err := xfer.Execute(rawSubmitter{sub: sub, raw: rawLogger}, batch, out); err != nil {
		return err
	}
	logger.Debug("Transfers complete", "count", len(batch))
	return nil
}

// rawSubmitter dumps outgoing writes before submission and incoming reads
// after a successful one.
type rawSubmitter struct {
	sub xfer.Submitter
	raw log.RawLogger
}

func (r rawSubmitter) Submit(xfers []*xfer.Transfer) error {
	if r.raw == nil {
		return r.sub.Submit(xfers)
	}
	for i, t := range xfers {
		if t.Direction == xfer.Write {
			r.raw.Log(i, false, t.Data)
		}
	}
	if err := r.sub.Submit(xfers); err != nil {
		return err
	}
	for i, t := range xfers {
		if t.Direction == xfer.Read {
			r.raw.Log(i, true, t.Data)
		}
	}
	return nil
}
