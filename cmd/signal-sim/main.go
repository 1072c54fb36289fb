package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neuroguard/bioapi/pkg/biosignal"
	"github.com/neuroguard/bioapi/pkg/common/logger"
)

// signal-sim emits CSV readings in the capture firmware's line format, one
// per interval. Point it at a pty to feed a locally running bio-API.
func main() {
	var (
		output   = flag.String("output", "-", `where to write lines: "-" for stdout or a device path`)
		interval = flag.Duration("interval", time.Second, "delay between emitted readings")
		seed     = flag.Int64("seed", 0, "generator seed, 0 means time-based")
		user     = flag.String("user", "", "override the user id stamped on each reading")
	)
	flag.Parse()

	logger.Init()

	var out io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.OpenFile(*output, os.O_WRONLY, 0)
		if err != nil {
			logger.Log.WithError(err).WithField("output", *output).Fatal("failed to open output device")
		}
		defer f.Close()
		out = f
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := biosignal.NewGenerator(rand.New(rand.NewSource(*seed)))

	logger.Log.WithFields(map[string]interface{}{
		"output":   *output,
		"interval": interval.String(),
	}).Info("signal simulator started")

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			reading := gen.Generate()
			if *user != "" {
				reading.UserID = *user
			}
			if _, err := fmt.Fprintln(out, biosignal.FormatLine(reading)); err != nil {
				logger.Log.WithError(err).Fatal("failed to write reading")
			}
		case <-stop:
			logger.Log.Info("signal simulator stopped")
			return
		}
	}
}
