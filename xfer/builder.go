package xfer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/i3ctransfer/pec"
)

// Op is one --read or --write occurrence, in command-line order.
type Op struct {
	Direction Direction
	Spec      string
}

// WriteOptions controls how a write payload is encoded.
type WriteOptions struct {
	PEC     bool
	Address pec.Address
}

// WriteInfo describes an encoded write for operator-visible reporting.
type WriteInfo struct {
	Len       int
	HasPEC    bool
	PEC       byte
	Kind      pec.Kind
	Truncated int
}

// BuildRead parses a read length and returns a Read transfer with a zeroed
// buffer of that length.
func BuildRead(spec string) (*Transfer, error) {
	n, err := parseNumber(spec, 64)
	if err == nil && n > MaxReadLen {
		err = ErrValueRange
	}
	if err != nil {
		return nil, &ArgumentError{Flag: "read", Value: spec, Err: err}
	}
	return &Transfer{
		Direction: Read,
		Data:      make([]byte, n),
	}, nil
}

// BuildWrite parses a comma-separated byte list into a Write transfer and
// appends the PEC byte when enabled.
func BuildWrite(spec string, opts WriteOptions) (*Transfer, WriteInfo, error) {
	var info WriteInfo

	fields, dropped := splitList(spec, MaxWriteBytes)
	info.Truncated = dropped

	if opts.PEC && len(fields) == 0 {
		return nil, info, &ArgumentError{Flag: "write", Value: spec, Err: pec.ErrEmptyPayload}
	}

	size := len(fields)
	if opts.PEC {
		size++
	}
	buf := make([]byte, 0, size)
	for _, f := range fields {
		v, err := parseNumber(f, 8)
		if err != nil {
			return nil, info, &ArgumentError{Flag: "write", Value: f, Err: err}
		}
		buf = append(buf, byte(v))
	}

	if opts.PEC {
		var err error
		info.Kind = pec.KindOf(buf)
		buf, info.PEC, err = pec.Append(buf, opts.Address)
		if err != nil {
			return nil, info, &ArgumentError{Flag: "write", Value: spec, Err: err}
		}
		info.HasPEC = true
	}
	info.Len = len(buf)

	return &Transfer{Direction: Write, Data: buf}, info, nil
}

// Builder turns ordered flag occurrences into a Batch.
type Builder struct {
	opts   WriteOptions
	out    io.Writer
	logger *slog.Logger
}

// NewBuilder creates a Builder. PEC reports ("append crc=...") go to out;
// a nil out discards them.
func NewBuilder(opts WriteOptions, out io.Writer, logger *slog.Logger) *Builder {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{opts: opts, out: out, logger: logger}
}

// Build builds every op in order. On the first failure the transfers built so
// far are released and nothing is returned.
func (b *Builder) Build(ops []Op) (Batch, error) {
	batch := make(Batch, 0, len(ops))
	for i, op := range ops {
		t, err := b.build(op)
		if err != nil {
			batch.Release()
			return nil, err
		}
		b.logger.Debug("Built transfer", "index", i, "direction", t.Direction, "len", t.Len())
		batch = append(batch, t)
	}
	return batch, nil
}

func (b *Builder) build(op Op) (*Transfer, error) {
	switch op.Direction {
	case Read:
		return BuildRead(op.Spec)
	case Write:
		t, info, err := BuildWrite(op.Spec, b.opts)
		if err != nil {
			return nil, err
		}
		if info.Truncated > 0 {
			b.logger.Warn("Write list truncated", "max", MaxWriteBytes, "dropped", info.Truncated)
		}
		if info.HasPEC {
			b.logger.Debug("Appended PEC", "kind", info.Kind, "addr", b.opts.Address, "pec", fmt.Sprintf("0x%02x", info.PEC))
			fmt.Fprintf(b.out, "append crc=0x%02x, len=%d\n", info.PEC, info.Len)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown transfer direction %v", op.Direction)
	}
}
