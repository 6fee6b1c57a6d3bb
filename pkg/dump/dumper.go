package dump

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"flvdump/pkg/av/flv"
)

// Dumper loads one FLV file into memory, demuxes it and writes the structural
// report. The demuxing itself lives in pkg/av/flv; this is the I/O shell
// around it.
type Dumper struct {
	configPath string
	inputPath  string
	out        io.Writer

	config  *config
	logger  *zap.Logger
	demuxer *flv.Demuxer
}

func New(opts ...Option) (*Dumper, error) {
	d, err := (&Dumper{}).loadOptions(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load options")
	}

	return d, nil
}

func (d *Dumper) loadOptions(opts ...Option) (*Dumper, error) {
	for _, opt := range opts {
		opt(d)
	}

	if d.inputPath == "" {
		return nil, errInputPath
	}

	if d.configPath != "" {
		if err := d.loadConfig(d.configPath); err != nil {
			return nil, errors.Wrap(err, "load config")
		}
	}
	if d.config == nil {
		d.config = new(config)
	}

	if d.config.PayloadPreview <= 0 {
		d.config.PayloadPreview = 16 //bytes
	}

	if err := d.initLogger(); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	if d.demuxer == nil {
		d.demuxer = flv.NewDemuxer()
	}

	return d, nil
}

// Run parses the input file and writes the report. The report always carries
// every record parsed before a structural error; the error itself is returned
// after reporting so the caller can reflect it in the exit status.
func (d *Dumper) Run() error {
	data, err := ioutil.ReadFile(d.inputPath)
	if err != nil {
		return errors.Wrap(err, "read input file")
	}

	dump, err := d.demuxer.Demux(data)
	if err != nil {
		return errors.Wrap(err, "demux flv")
	}

	out, closer, err := d.output()
	if err != nil {
		return errors.Wrap(err, "open report output")
	}
	if closer != nil {
		defer closer.Close()
	}

	rep := newReporter(out, d.config.PayloadPreview)
	if err := rep.write(d.inputPath, int64(len(data)), dump); err != nil {
		return errors.Wrap(err, "write report")
	}

	d.logger.Info("dump finished",
		zap.String("file", d.inputPath),
		zap.Int("fileSize", len(data)),
		zap.Int("records", len(dump.Records)),
		zap.Int("tags", len(dump.Tags())),
	)

	if dump.Err != nil {
		d.logger.Warn("parse stopped early", zap.Error(dump.Err))
		return dump.Err
	}

	return nil
}

func (d *Dumper) output() (io.Writer, io.Closer, error) {
	if d.out != nil {
		return d.out, nil, nil
	}

	if d.config.Output == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(d.config.Output)
	if err != nil {
		return nil, nil, err
	}

	return f, f, nil
}

type Option func(*Dumper)

func WithConfigPath(p string) Option {
	return func(d *Dumper) {
		d.configPath = p
	}
}

func WithInputPath(p string) Option {
	return func(d *Dumper) {
		d.inputPath = p
	}
}

func WithOutput(w io.Writer) Option {
	return func(d *Dumper) {
		d.out = w
	}
}

func WithPayloadPreview(n int) Option {
	return func(d *Dumper) {
		if d.config == nil {
			d.config = new(config)
		}
		d.config.PayloadPreview = n
	}
}

var (
	errInputPath = errors.New("input path required")
)
