// SPDX-License-Identifier: EPL-2.0

// Command waveform builds a waveform envelope from an audio file, or
// patches a previously saved one after the audio was edited.
//
//	waveform -in take.wav -out take.dat
//	waveform -in take.wav -base take.dat -start 44100 -end 88200 -out take.dat
//	waveform -base take.dat -start 0 -end 44100 -delete -out take.dat
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/waveform"
	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/envelope"
	"github.com/ik5/waveform/session"
	"github.com/ik5/waveform/storage"
)

type config struct {
	in        string
	format    string
	out       string
	base      string
	scale     int
	amplitude float64
	rate      int
	start     int
	end       int
	isDelete  bool
	zstd      bool
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("waveform", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.in, "in", "", "Input audio file (wav, mp3, ogg, aiff, flac)")
	fs.StringVar(&cfg.format, "format", "", "Decoder to use instead of the one matching the input extension")
	fs.StringVar(&cfg.out, "out", "", "Envelope output path (default: input path with .dat appended)")
	fs.StringVar(&cfg.base, "base", "", "Previously saved envelope to edit with -start/-end")
	fs.IntVar(&cfg.scale, "scale", 512, "Input samples per envelope entry")
	fs.Float64Var(&cfg.amplitude, "amplitude", 1.0, "Linear gain applied before quantization")
	fs.IntVar(&cfg.rate, "rate", 0, "Resample to this rate before building (0 keeps the source rate)")
	fs.IntVar(&cfg.start, "start", 0, "First sample of the edited range")
	fs.IntVar(&cfg.end, "end", -1, "End of the edited range, exclusive (-1 means no range: full build)")
	fs.BoolVar(&cfg.isDelete, "delete", false, "Cut the range out of the base envelope")
	fs.BoolVar(&cfg.zstd, "zstd", false, "Compress the output with zstd")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.in == "" && !cfg.isDelete {
		return config{}, errors.New("-in is required")
	}
	if cfg.out == "" {
		if cfg.in == "" {
			return config{}, errors.New("-out is required with -delete and no -in")
		}
		cfg.out = cfg.in + ".dat"
	}
	if cfg.end < 0 && (cfg.isDelete || cfg.base != "") {
		return config{}, errors.New("-base and -delete need a range: set -end")
	}

	return cfg, nil
}

func (cfg config) descriptor() envelope.Descriptor {
	desc := envelope.Descriptor{
		Scale:          cfg.scale,
		AmplitudeScale: cfg.amplitude,
		IsDelete:       cfg.isDelete,
	}
	if cfg.end >= 0 {
		desc.Range = &envelope.Range{Start: cfg.start, End: cfg.end}
	}

	return desc
}

func (cfg config) compression() storage.Compression {
	if cfg.zstd {
		return storage.Zstd
	}
	return storage.None
}

func decodeInput(cfg config) (*audio.Buffer, error) {
	if cfg.in == "" {
		return nil, nil
	}

	reg := waveform.DefaultRegistry()

	format := cfg.format
	if format == "" {
		if _, err := reg.ForPath(cfg.in); err != nil {
			return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(reg.Formats(), ", "))
		}
		format = strings.TrimPrefix(filepath.Ext(cfg.in), ".")
	}

	f, err := os.Open(cfg.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := waveform.Decode(reg, f, format)
	if err != nil {
		return nil, err
	}

	if cfg.rate > 0 {
		return audio.Resample(buf, cfg.rate)
	}

	return buf, nil
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "waveform:", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sess := session.New(session.WithLogger(logger))

	if cfg.base != "" {
		prev, err := storage.LoadFile(cfg.base)
		if err != nil {
			logger.Error("loading base envelope failed", "path", cfg.base, "error", err)
			return 1
		}
		sess.Restore(prev)
		logger.Debug("loaded base envelope", "path", cfg.base, "entries", prev.Len())
	}

	buf, err := decodeInput(cfg)
	if err != nil {
		logger.Error("decoding input failed", "path", cfg.in, "error", err)
		return 1
	}
	if buf != nil {
		logger.Debug("decoded input",
			"path", cfg.in,
			"rate", buf.SampleRate,
			"channels", buf.NumChannels(),
			"samples", buf.Len(),
		)
	}

	res, err := sess.Process(buf, cfg.descriptor())
	if err != nil {
		logger.Error("building envelope failed", "error", err)
		return 1
	}

	if err := storage.SaveFile(cfg.out, res.Envelope, cfg.compression()); err != nil {
		logger.Error("saving envelope failed", "path", cfg.out, "error", err)
		return 1
	}

	logger.Info("envelope written",
		"path", cfg.out,
		"entries", res.Envelope.Len(),
		"duration", res.Envelope.Duration(),
		"compression", cfg.compression().String(),
	)

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
